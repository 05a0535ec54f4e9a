package catalog

// CategoryKey identifies a thematic bucket of idea templates.
type CategoryKey string

// TechKey identifies a technology focus.
type TechKey string

// AudienceKey identifies a target audience.
type AudienceKey string

const (
	Productivity  CategoryKey = "productivity"
	Social        CategoryKey = "social"
	Entertainment CategoryKey = "entertainment"
	Education     CategoryKey = "education"
	Health        CategoryKey = "health"
	Finance       CategoryKey = "finance"
	Utility       CategoryKey = "utility"

	// AllCategories asks the generator to pick a category at random.
	AllCategories CategoryKey = "all"
)

const (
	AI     TechKey = "ai"
	AR     TechKey = "ar"
	Mobile TechKey = "mobile"
	Web    TechKey = "web"
	IoT    TechKey = "iot"

	// DefaultTechnology is used when no technology focus is requested.
	DefaultTechnology = Web
)

const (
	General           AudienceKey = "general"
	Business          AudienceKey = "business"
	Developers        AudienceKey = "developers"
	Creative          AudienceKey = "creative"
	EducationAudience AudienceKey = "education"
	Children          AudienceKey = "children"

	DefaultAudience = General
)

// Category holds the template fragments of one category. Features and
// Technical are bundles: each inner slice is selected as a whole.
type Category struct {
	Key          CategoryKey
	Name         string
	Prefixes     []string
	Suffixes     []string
	Descriptions []string
	Features     [][]string
	Technical    [][]string
	Tags         []string
}

// TitleFragment is a prefix/suffix pair that forms a title.
type TitleFragment struct {
	Prefix string
	Suffix string
}

type Technology struct {
	Key       TechKey
	Label     string
	Features  []string
	Technical []string
	Titles    []TitleFragment
}

type Audience struct {
	Key      AudienceKey
	Label    string
	Features []string
	Tags     []string
}

// Catalog is a read-only lookup over the template tables. Entries returned
// by its methods share backing arrays with the catalog and must not be
// modified.
type Catalog struct {
	categories    map[CategoryKey]Category
	categoryOrder []CategoryKey

	technologies map[TechKey]Technology
	techOrder    []TechKey

	audiences     map[AudienceKey]Audience
	audienceOrder []AudienceKey
}

var defaultCatalog = New(categoryTable, technologyTable, audienceTable)

// Default returns the built-in template tables.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from the given entries. Later entries with a
// duplicate key replace earlier ones while keeping the first position.
func New(categories []Category, technologies []Technology, audiences []Audience) *Catalog {
	c := &Catalog{
		categories:   make(map[CategoryKey]Category, len(categories)),
		technologies: make(map[TechKey]Technology, len(technologies)),
		audiences:    make(map[AudienceKey]Audience, len(audiences)),
	}

	for _, cat := range categories {
		if _, exists := c.categories[cat.Key]; !exists {
			c.categoryOrder = append(c.categoryOrder, cat.Key)
		}
		c.categories[cat.Key] = cat
	}
	for _, tech := range technologies {
		if _, exists := c.technologies[tech.Key]; !exists {
			c.techOrder = append(c.techOrder, tech.Key)
		}
		c.technologies[tech.Key] = tech
	}
	for _, aud := range audiences {
		if _, exists := c.audiences[aud.Key]; !exists {
			c.audienceOrder = append(c.audienceOrder, aud.Key)
		}
		c.audiences[aud.Key] = aud
	}

	return c
}

func (c *Catalog) Category(key CategoryKey) (Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

func (c *Catalog) Technology(key TechKey) (Technology, bool) {
	tech, ok := c.technologies[key]
	return tech, ok
}

func (c *Catalog) Audience(key AudienceKey) (Audience, bool) {
	aud, ok := c.audiences[key]
	return aud, ok
}

// CategoryKeys returns the known category keys in table order.
func (c *Catalog) CategoryKeys() []CategoryKey {
	return append([]CategoryKey(nil), c.categoryOrder...)
}

func (c *Catalog) TechKeys() []TechKey {
	return append([]TechKey(nil), c.techOrder...)
}

func (c *Catalog) AudienceKeys() []AudienceKey {
	return append([]AudienceKey(nil), c.audienceOrder...)
}

// IsCategory reports whether key is "all" or a known category.
func (c *Catalog) IsCategory(key CategoryKey) bool {
	if key == AllCategories {
		return true
	}
	_, ok := c.categories[key]
	return ok
}

func (c *Catalog) IsTechnology(key TechKey) bool {
	_, ok := c.technologies[key]
	return ok
}

func (c *Catalog) IsAudience(key AudienceKey) bool {
	_, ok := c.audiences[key]
	return ok
}
