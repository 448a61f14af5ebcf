// Package country resolves country display names to ISO3 and M49 numeric
// codes and back. The statistical sources disagree about display names
// ("Egypt" vs "Egypt, Arab Rep.", "Viet Nam" vs "Vietnam"), so the resolver
// layers an alias table over the base ISO mapping.
package country

import "strings"

// Resolver maps country display names to codes and ISO3 codes back to a
// best-effort display name. It is built once at process start and read-only
// thereafter; every adapter receives the same instance by handle.
type Resolver struct {
	nameToISO3 map[string]string
	nameToM49  map[string]string
	iso3ToName map[string]string
}

// NewResolver builds a resolver from the embedded ISO table plus the alias
// overrides for source-specific name spellings.
func NewResolver() *Resolver {
	r := &Resolver{
		nameToISO3: make(map[string]string, len(countries)+len(aliases)),
		nameToM49:  make(map[string]string, len(countries)+len(aliases)),
		iso3ToName: make(map[string]string, len(countries)),
	}
	for _, c := range countries {
		r.nameToISO3[c.Name] = c.ISO3
		if c.M49 != "" {
			r.nameToM49[c.Name] = c.M49
		}
		r.iso3ToName[c.ISO3] = c.Name
	}
	for alias, iso3 := range aliases {
		r.nameToISO3[alias] = iso3
		if m49, ok := r.nameToM49[r.iso3ToName[iso3]]; ok {
			r.nameToM49[alias] = m49
		}
	}
	return r
}

// ISO3 returns the three-letter code for a display name. Unresolvable names
// fail soft: callers skip the row rather than error out.
func (r *Resolver) ISO3(name string) (string, bool) {
	code, ok := r.nameToISO3[name]
	return code, ok
}

// M49 returns the numeric M49-style code for a display name.
func (r *Resolver) M49(name string) (string, bool) {
	code, ok := r.nameToM49[name]
	return code, ok
}

// Name returns a display name for an ISO3 code, echoing the code itself
// when it cannot be resolved.
func (r *Resolver) Name(iso3 string) string {
	if name, ok := r.iso3ToName[strings.ToUpper(iso3)]; ok {
		return name
	}
	return iso3
}

// Names returns the sorted display names of every country in the base
// table. Aliases are not included.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return names
}

// ISO3Codes returns every ISO3 code in the base table.
func (r *Resolver) ISO3Codes() []string {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.ISO3)
	}
	return codes
}
