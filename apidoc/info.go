package apidoc

// Defaults used when a field of Info is left empty.
const (
	DefaultTitle       = "CommandableHttpService"
	DefaultDescription = "Commandable microservice"
	DefaultInfoVersion = "1"
)

// Info is the document header metadata. Empty fields are omitted from the
// rendered document.
type Info struct {
	Title          string
	Description    string
	Version        string
	TermsOfService string
	Contact        Contact
	License        License
}

// Contact describes who maintains the service.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License describes the license the service is published under.
type License struct {
	Name string
	URL  string
}

// DefaultInfo returns the header used when nothing is configured.
func DefaultInfo() Info {
	return Info{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Version:     DefaultInfoVersion,
	}
}

// WithDefaults returns a copy of i with empty title, description and version
// replaced by their defaults.
func (i Info) WithDefaults() Info {
	if i.Title == "" {
		i.Title = DefaultTitle
	}
	if i.Description == "" {
		i.Description = DefaultDescription
	}
	if i.Version == "" {
		i.Version = DefaultInfoVersion
	}
	return i
}

func (i Info) mapping() Mapping {
	return Mapping{
		{"title", i.Title},
		{"description", i.Description},
		{"version", i.Version},
		{"termsOfService", i.TermsOfService},
		{"contact", Mapping{
			{"name", i.Contact.Name},
			{"url", i.Contact.URL},
			{"email", i.Contact.Email},
		}},
		{"license", Mapping{
			{"name", i.License.Name},
			{"url", i.License.URL},
		}},
	}
}
