package models

import "strings"

// Site holds the firm identity and page content shared by every page
type Site struct {
	Name          string         `mapstructure:"name"`
	LegalName     string         `mapstructure:"legal_name"`
	Tagline       string         `mapstructure:"tagline"`
	Description   string         `mapstructure:"description"`
	URL           string         `mapstructure:"url"`
	OGImage       string         `mapstructure:"og_image"`
	Attorney      string         `mapstructure:"attorney"`
	Contact       ContactInfo    `mapstructure:"contact"`
	CalendlyURL   string         `mapstructure:"calendly_url"`
	ServiceAreas  []string       `mapstructure:"service_areas"`
	Nav           []NavItem      `mapstructure:"nav"`
	Highlights    []Highlight    `mapstructure:"highlights"`
	PracticeAreas []PracticeArea `mapstructure:"practice_areas"`
	Testimonials  []Testimonial  `mapstructure:"testimonials"`
}

// ContactInfo is the office contact block, also used as the fallback
// channel when a form submission fails
type ContactInfo struct {
	PhoneDisplay string  `mapstructure:"phone_display"`
	PhoneE164    string  `mapstructure:"phone_e164"`
	Email        string  `mapstructure:"email"`
	Address      Address `mapstructure:"address"`
}

type Address struct {
	StreetAddress   string `mapstructure:"street_address"`
	AddressLocality string `mapstructure:"address_locality"`
	AddressRegion   string `mapstructure:"address_region"`
	PostalCode      string `mapstructure:"postal_code"`
	AddressCountry  string `mapstructure:"address_country"`
}

type NavItem struct {
	Label string `mapstructure:"label"`
	Href  string `mapstructure:"href"`
}

type Highlight struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

type PracticeArea struct {
	Slug           string   `mapstructure:"slug"`
	Title          string   `mapstructure:"title"`
	Description    string   `mapstructure:"description"`
	TypicalMatters []string `mapstructure:"typical_matters"`
}

type Testimonial struct {
	Name  string `mapstructure:"name"`
	Quote string `mapstructure:"quote"`
}

// Host returns the site host without scheme, used as payload source tag
func (s *Site) Host() string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.URL, "https://"), "http://")
	return strings.TrimRight(host, "/")
}

// DefaultSite returns the built-in content. A SITE_FILE may override any field.
func DefaultSite() *Site {
	return &Site{
		Name:        "Farida Law San Diego",
		LegalName:   "Farida Law",
		Tagline:     "Trusted Counsel. Strong Advocacy.",
		Description: "Farida Law SD provides clear, professional legal guidance with a client-first approach. Request a consultation or submit your details through our secure intake form.",
		URL:         "https://faridalawsd.com",
		OGImage:     "/static/images/og.png",
		Attorney:    "Crystal Farida",
		Contact: ContactInfo{
			PhoneDisplay: "(619) 599-5129",
			PhoneE164:    "+16195995129",
			Email:        "Crystal@faridalawsd.com",
			Address: Address{
				StreetAddress:   "343 E Main St",
				AddressLocality: "El Cajon",
				AddressRegion:   "CA",
				PostalCode:      "92020",
				AddressCountry:  "US",
			},
		},
		ServiceAreas: []string{"El Cajon", "San Diego County", "CA"},
		Nav: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "About", Href: "/about/"},
			{Label: "Practice Areas", Href: "/practice-areas/"},
			{Label: "Reviews", Href: "/reviews/"},
			{Label: "Consultation", Href: "/consultation-request/"},
			{Label: "Client Intake", Href: "/client-intake/"},
		},
		Highlights: []Highlight{
			{Title: "Professional", Description: "Clear communication"},
			{Title: "Prepared", Description: "Detail-driven strategy"},
			{Title: "Local", Description: "San Diego County"},
		},
		PracticeAreas: []PracticeArea{
			{
				Slug:        "car-accidents",
				Title:       "Car Accidents",
				Description: "Guidance after a collision, from the first insurance call to resolution.",
				TypicalMatters: []string{
					"Rear-end and intersection collisions",
					"Uninsured and underinsured motorist claims",
					"Rideshare accidents",
					"Property damage and medical bills",
				},
			},
			{
				Slug:        "motorcycle-truck",
				Title:       "Motorcycle & Truck Accidents",
				Description: "Serious crashes involving motorcycles and commercial vehicles.",
				TypicalMatters: []string{
					"Commercial carrier and fleet claims",
					"Lane-splitting and visibility disputes",
					"Catastrophic injury documentation",
					"Multiple-party liability",
				},
			},
			{
				Slug:        "premises-liability",
				Title:       "Slip & Fall / Premises Liability",
				Description: "Injuries caused by unsafe property conditions.",
				TypicalMatters: []string{
					"Wet floors and uneven walkways",
					"Inadequate lighting or security",
					"Store and restaurant incidents",
					"Dog bites and animal attacks",
				},
			},
			{
				Slug:        "wrongful-death",
				Title:       "Wrongful Death",
				Description: "Compassionate, steady advocacy for families after a loss.",
				TypicalMatters: []string{
					"Fatal vehicle collisions",
					"Survival actions",
					"Funeral and burial expenses",
					"Loss of support and companionship",
				},
			},
		},
		Testimonials: []Testimonial{
			{Name: "Verified Client", Quote: "Professional, responsive, and clear about next steps. I felt supported throughout."},
			{Name: "Verified Client", Quote: "Strong communication and meticulous attention to detail. Excellent experience."},
			{Name: "Verified Client", Quote: "A calm advocate with a thoughtful strategy. Very professional from start to finish."},
		},
	}
}
