package shell

import "strings"

// Profile 是 whoami/contact 使用的站点主人信息。
type Profile struct {
	Name     string
	User     string
	Role     string
	Access   string
	Bio      string
	Email    string
	GitHub   string
	LinkedIn string
}

// DefaultProfile 返回内置的站点主人信息。
func DefaultProfile() Profile {
	return Profile{
		Name:     "Ilham Wibawa",
		User:     "guest@ilhamwibawa.com",
		Role:     "Visitor",
		Access:   "Read Only",
		Bio:      "Ilham Wibawa is a software engineer who loves building systems that matter.",
		Email:    "hello@ilhamwibawa.com",
		GitHub:   "https://github.com/ilhamwibawa",
		LinkedIn: "https://linkedin.com/in/ilhamwibawa",
	}
}

// WithDefaults 用内置值补齐空字段。
func (p Profile) WithDefaults() Profile {
	def := DefaultProfile()
	fill := func(dst *string, fallback string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = fallback
		}
	}
	fill(&p.Name, def.Name)
	fill(&p.User, def.User)
	fill(&p.Role, def.Role)
	fill(&p.Access, def.Access)
	fill(&p.Bio, def.Bio)
	fill(&p.Email, def.Email)
	fill(&p.GitHub, def.GitHub)
	fill(&p.LinkedIn, def.LinkedIn)
	return p
}

func (p Profile) whoami() Output {
	return Output{
		Kind: OutputInfo,
		Fields: []Field{
			{Key: "User", Value: p.User},
			{Key: "Role", Value: p.Role},
			{Key: "Access Level", Value: p.Access},
		},
		Text: p.Bio,
	}
}

func (p Profile) contact() Output {
	return Output{
		Kind: OutputLinks,
		Links: []Link{
			{Label: "Email", Text: p.Email, URL: "mailto:" + p.Email},
			{Label: "GitHub", Text: displayURL(p.GitHub), URL: p.GitHub},
			{Label: "LinkedIn", Text: displayURL(p.LinkedIn), URL: p.LinkedIn},
		},
	}
}

func displayURL(raw string) string {
	out := strings.TrimPrefix(raw, "https://")
	out = strings.TrimPrefix(out, "http://")
	return strings.TrimSuffix(out, "/")
}
