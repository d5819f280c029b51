package entity

import "math/rand"

var (
	nameTitles = []string{
		"Dr.", "Professor", "Chief Exec", "Specialist", "The Honorable",
		"Prince", "Princess", "The Venerable", "The Eminent",
	}

	nameFirst = []string{
		"Evelyn", "Wyatan", "Jud", "Danella", "Sarah", "Johnna",
		"Vicki", "Alano", "Trever", "Delphine", "Sigismundo",
		"Shermie", "Filide", "Daniella", "Annmarie", "Bartram",
		"Pennie", "Rafael", "Celine", "Kacey", "Saree", "Tu",
		"Erny", "Evonne", "Charita", "Anny", "Mavra", "Fredek",
		"Silvio", "Cam", "Hulda", "Nanice", "Iolanthe", "Brucie",
		"Kara", "Paco",
	}

	nameLast = []string{
		"Itch", "Potato", "Mushroom", "Grape", "Mouse", "Feet",
		"Nerves", "Sweat", "Sweet", "Bug", "Piles", "Trumpet", "Shark",
		"Grouper", "Flutes", "Showers", "Humbug", "Cauliflower", "Shoes",
		"Hopeless", "Zombie", "Monster", "Fuzzy",
	}
)

func randomName(rng *rand.Rand) string {
	return nameTitles[rng.Intn(len(nameTitles))] + " " +
		nameFirst[rng.Intn(len(nameFirst))] + " " +
		nameLast[rng.Intn(len(nameLast))]
}
