// Package refdata holds the static category and location catalogs backing
// filter validation, nearby fallbacks and the sitemap job.
package refdata

import "slices"

// Category is a static activity category venues are listed under.
type Category struct {
	Slug        string
	Name        string
	Description string
}

// Categories is the full activity catalog, in display order.
var Categories = []Category{
	{Slug: "swimming", Name: "Swimming", Description: "Learn-to-swim schools, squads and aquatic centres"},
	{Slug: "gymnastics", Name: "Gymnastics", Description: "Gymnastics clubs and tumbling programs"},
	{Slug: "soccer", Name: "Soccer", Description: "Junior football clubs and skills academies"},
	{Slug: "basketball", Name: "Basketball", Description: "Junior basketball competitions and camps"},
	{Slug: "tennis", Name: "Tennis", Description: "Tennis coaching and hot shots programs"},
	{Slug: "dance", Name: "Dance", Description: "Ballet, jazz, hip hop and creative movement studios"},
	{Slug: "martial-arts", Name: "Martial Arts", Description: "Karate, taekwondo, judo and BJJ dojos"},
	{Slug: "play-centres", Name: "Play Centres", Description: "Indoor play centres and soft play"},
	{Slug: "trampoline", Name: "Trampoline Parks", Description: "Trampoline and inflatable parks"},
	{Slug: "rock-climbing", Name: "Rock Climbing", Description: "Indoor climbing and bouldering gyms"},
	{Slug: "athletics", Name: "Athletics", Description: "Little athletics and running clubs"},
	{Slug: "music", Name: "Music", Description: "Early childhood music and instrument lessons"},
}

// CategoryBySlug returns the category with the given slug.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}

	return Category{}, false
}

// ValidCategory reports whether slug names a known category.
func ValidCategory(slug string) bool {
	return slices.ContainsFunc(Categories, func(c Category) bool { return c.Slug == slug })
}
