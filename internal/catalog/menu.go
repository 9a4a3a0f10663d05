package catalog

import "github.com/pizzatime/storefront/internal/domain"

const imageBase = "https://cdn.poehali.dev/projects/b5fe89ca-42ef-4ce7-8378-c2080539a932/files/"

// Menu is the pizza list the storefront is seeded with
var Menu = []domain.CatalogItem{
	{
		ID:          1,
		Name:        "Маргарита",
		Description: "Томатный соус, моцарелла, свежий базилик",
		Price:       450,
		Image:       imageBase + "a1d8895c-19c7-40fd-afee-ee0ac7810419.jpg",
		Size:        domain.Size30,
	},
	{
		ID:          2,
		Name:        "Пепперони",
		Description: "Томатный соус, моцарелла, пепперони",
		Price:       550,
		Image:       imageBase + "fbd1766a-5e78-4051-986d-d384ee27db73.jpg",
		Size:        domain.Size30,
	},
	{
		ID:          3,
		Name:        "Вегетарианская",
		Description: "Томатный соус, моцарелла, перец, грибы, оливки, помидоры",
		Price:       500,
		Image:       imageBase + "53c1d75d-c9bb-4459-8ff4-187436979819.jpg",
		Size:        domain.Size30,
	},
	{
		ID:          4,
		Name:        "Четыре сыра",
		Description: "Моцарелла, пармезан, дор блю, чеддер",
		Price:       650,
		Image:       imageBase + "a1d8895c-19c7-40fd-afee-ee0ac7810419.jpg",
		Size:        domain.Size30,
	},
	{
		ID:          5,
		Name:        "Мясная",
		Description: "Томатный соус, моцарелла, ветчина, бекон, курица",
		Price:       700,
		Image:       imageBase + "fbd1766a-5e78-4051-986d-d384ee27db73.jpg",
		Size:        domain.Size30,
	},
	{
		ID:          6,
		Name:        "Гавайская",
		Description: "Томатный соус, моцарелла, ветчина, ананасы",
		Price:       600,
		Image:       imageBase + "53c1d75d-c9bb-4459-8ff4-187436979819.jpg",
		Size:        domain.Size30,
	},
}

// Default builds the catalog from Menu
func Default() *Catalog {
	c, err := New(Menu)
	if err != nil {
		panic(err)
	}
	return c
}
