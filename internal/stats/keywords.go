package stats

import "strings"

var teslaKeywords = []string{
	"tesla", "musk", "elon", "cybertruck", "model 3", "model y", "model s",
	"model x", "autopilot", "supercharger",
}

var muskKeywords = []string{"musk", "elon"}

// Company is a comparison cohort; a title belongs to every company whose
// keywords it contains.
type Company struct {
	Name     string
	Keywords []string
}

var Companies = []Company{
	{Name: "Tesla", Keywords: teslaKeywords},
	{Name: "Ford", Keywords: []string{"ford", "mustang mach-e", "f-150 lightning"}},
	{Name: "GM", Keywords: []string{"general motors", "chevrolet", "chevy", "gmc", "cadillac"}},
	{Name: "Rivian", Keywords: []string{"rivian"}},
	{Name: "Lucid", Keywords: []string{"lucid"}},
	{Name: "Hyundai/Kia", Keywords: []string{"hyundai", "ioniq", "kia"}},
	{Name: "BYD", Keywords: []string{"byd"}},
	{Name: "Volkswagen", Keywords: []string{"volkswagen", "vw id"}},
	{Name: "Toyota", Keywords: []string{"toyota", "lexus"}},
	{Name: "BMW", Keywords: []string{"bmw"}},
	{Name: "Mercedes", Keywords: []string{"mercedes"}},
	{Name: "Polestar", Keywords: []string{"polestar"}},
	{Name: "Nissan", Keywords: []string{"nissan"}},
}

func containsAny(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func MentionsTesla(title string) bool {
	return containsAny(title, teslaKeywords)
}

func MentionsMusk(title string) bool {
	return containsAny(title, muskKeywords)
}

func (c Company) Matches(title string) bool {
	return containsAny(title, c.Keywords)
}
