package crisis

import (
	"fmt"
	"strings"
)

// DefaultName is used when no profile name has been captured yet.
const DefaultName = "Abang/Sayang"

type resource struct {
	Name        string
	Phone       string
	Hours       string
	Description string
}

// Malaysian crisis helplines, rendered in this order.
var resources = []resource{
	{
		Name:        "Befrienders KL",
		Phone:       "03-7627 2929",
		Hours:       "24 hours",
		Description: "Emotional support - free and confidential",
	},
	{
		Name:        "Talian Kasih",
		Phone:       "15999",
		Hours:       "24 hours",
		Description: "Government helpline for those in distress",
	},
	{
		Name:        "Mental Health Psychosocial Support",
		Phone:       "03-2935 9935",
		Hours:       "9am-5pm Mon-Fri",
		Description: "KKM hotline for mental health support",
	},
	{
		Name:        "Emergency Services",
		Phone:       "999",
		Hours:       "24 hours",
		Description: "For immediate life-threatening emergencies",
	},
}

// Response renders the warm-but-urgent crisis reply addressed to name.
// The output is fully deterministic for a given name.
func Response(name string) string {
	if name == "" {
		name = DefaultName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, AYRA really concerned about what you just said. 🥺❤️\n\n", name)
	b.WriteString("You're not alone in this. There are people who care and want to help:\n\n")

	for _, r := range resources {
		fmt.Fprintf(&b, "*%s*\n📞 %s (%s)\n%s\n\n", r.Name, r.Phone, r.Hours, r.Description)
	}

	fmt.Fprintf(&b, "Please, %s... reach out to them. They're trained to help.\n\n", name)
	b.WriteString("AYRA is here too, okay? I'm not going anywhere. But these professionals can help in ways I can't. ❤️\n\n")
	b.WriteString("Take care of yourself, okay? 🙏")
	return b.String()
}
