package domain

import "strings"

// NavigationEntry is a single item in the site header navigation.
type NavigationEntry struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Service describes one advisory offering shown on the services page.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Owner holds the public profile of the firm's owner.
type Owner struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
}

// SiteConfig is the site-wide static configuration consumed by the marketing
// frontend: contact details, navigation, and service listings. It carries no
// per-request state and is built once at startup.
type SiteConfig struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	URL         string `json:"url"`

	Email          string `json:"email"`
	WhatsAppNumber string `json:"whatsappNumber"`
	WhatsAppLink   string `json:"whatsappLink"`
	Instagram      string `json:"instagram"`

	Address       string `json:"address"`
	BusinessHours string `json:"businessHours"`
	MapLink       string `json:"mapLink"`

	Owner  Owner    `json:"owner"`
	Values []string `json:"values"`

	Navigation []NavigationEntry `json:"navigation"`
	Services   []Service         `json:"services"`
}

// DefaultSiteConfig returns the FluxCapital site configuration. The WhatsApp
// number is environment-supplied so the outbound chat link can be rotated
// without a deploy.
func DefaultSiteConfig(whatsappNumber string) SiteConfig {
	return SiteConfig{
		Name:    "FluxCapital",
		Tagline: "More Than Investment, It's Momentum.",
		Description: "FluxCapital is a discipline-first trade advisory guiding thoughtful investors " +
			"with research-backed strategy, risk control, and clear communication.",
		URL: "https://fluxtrading.in",

		Email:          "fluxcapital11@gmail.com",
		WhatsAppNumber: whatsappNumber,
		WhatsAppLink:   WhatsAppLink(whatsappNumber),
		Instagram:      "https://www.instagram.com/fluxcapital_",

		Address:       "Mumbai, Maharashtra, India",
		BusinessHours: "Monday - Friday: 9:00 AM - 6:00 PM IST",
		MapLink:       "https://maps.google.com",

		Owner: Owner{
			Name:  "Ayushi Patel",
			Title: "Owner, Author & CEO",
			Bio: "Ayushi Patel brings over a decade of experience in financial markets, specializing in " +
				"risk-controlled trading strategies and disciplined investment approaches.",
		},
		Values: []string{"Integrity", "Prudence", "Discipline", "Transparency"},

		Navigation: []NavigationEntry{
			{Name: "Home", Href: "/"},
			{Name: "About", Href: "/about"},
			{Name: "Services", Href: "/services"},
			{Name: "Performance", Href: "/performance"},
			{Name: "Pricing", Href: "/pricing"},
			{Name: "Insights", Href: "/insights"},
			{Name: "FAQs", Href: "/faqs"},
			{Name: "Contact", Href: "/contact"},
		},
		Services: []Service{
			{Name: "Trade Consultancy & Advisory", Description: "Expert guidance on equity and derivative trading strategies", Icon: "TrendingUp"},
			{Name: "Portfolio Strategy", Description: "Comprehensive portfolio construction and optimization", Icon: "PieChart"},
			{Name: "Risk Management", Description: "Advanced risk assessment and mitigation strategies", Icon: "Shield"},
			{Name: "Research & Insights", Description: "In-depth market analysis and investment research", Icon: "Search"},
			{Name: "Training & Workshops", Description: "Educational programs for informed investment decisions", Icon: "GraduationCap"},
		},
	}
}

// WhatsAppLink builds a wa.me chat URL from an international phone number.
func WhatsAppLink(number string) string {
	digits := strings.TrimPrefix(strings.ReplaceAll(number, " ", ""), "+")
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
