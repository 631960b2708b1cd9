// Package catalog holds the seeded storefront data. Pets, services, and
// products are fixed literal tables loaded once at startup and never mutated.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onlypets/go-petstore-api/internal/model"
)

func Pets() []model.Pet {
	pets := []model.Pet{
		{ID: "pet_01", Name: "Buddy", Species: model.SpeciesDog, Breed: "Golden Retriever", Age: 3,
			Description: "Buddy is a friendly and energetic golden retriever who loves to play fetch and go on long walks. He's great with kids and other pets.",
			QuickFacts:  []string{"Loves water and swimming", "House trained", "Knows basic commands", "Great with children"}},
		{ID: "pet_02", Name: "Whiskers", Species: model.SpeciesCat, Breed: "Siamese", Age: 2,
			Description: "Whiskers is an elegant Siamese cat with piercing blue eyes. She's affectionate, vocal, and loves to be the center of attention.",
			QuickFacts:  []string{"Very talkative", "Enjoys lap time", "Indoor cat", "Playful and curious"}},
		{ID: "pet_03", Name: "Max", Species: model.SpeciesDog, Breed: "German Shepherd", Age: 5,
			Description: "Max is a loyal and intelligent German Shepherd. He's protective, well-trained, and perfect for active families.",
			QuickFacts:  []string{"Highly trainable", "Protective instinct", "Needs daily exercise", "Great guard dog"}},
		{ID: "pet_04", Name: "Luna", Species: model.SpeciesCat, Breed: "Persian", Age: 1,
			Description: "Luna is a beautiful Persian kitten with soft, fluffy fur. She's gentle, calm, and loves to be pampered.",
			QuickFacts:  []string{"Requires regular grooming", "Very calm", "Loves soft beds", "Indoor only"}},
		{ID: "pet_05", Name: "Charlie", Species: model.SpeciesDog, Breed: "Beagle", Age: 4,
			Description: "Charlie is a sweet beagle with a nose for adventure. He's friendly, loyal, and loves treats!",
			QuickFacts:  []string{"Good with other dogs", "Loves treats", "Enjoys walks", "Calm temperament"}},
		{ID: "pet_06", Name: "Mittens", Species: model.SpeciesCat, Breed: "Tabby", Age: 4,
			Description: "Mittens is a sweet tabby cat who loves cuddles and sunny windowsills. She's gentle and independent.",
			QuickFacts:  []string{"Independent", "Loves sun bathing", "Gentle nature", "Low maintenance"}},
		{ID: "pet_07", Name: "Rocky", Species: model.SpeciesDog, Breed: "Bulldog", Age: 2,
			Description: "Rocky is a charming English Bulldog with a lovable wrinkly face. He's calm, friendly, and great for apartment living.",
			QuickFacts:  []string{"Low energy", "Apartment friendly", "Loves naps", "Great companion"}},
		{ID: "pet_08", Name: "Tweety", Species: model.SpeciesBird, Breed: "Canary", Age: 1,
			Description: "Tweety is a cheerful canary with a beautiful singing voice. Perfect for bird lovers!",
			QuickFacts:  []string{"Beautiful singer", "Bright yellow color", "Easy to care for", "Social bird"}},
		{ID: "pet_09", Name: "Daisy", Species: model.SpeciesDog, Breed: "Poodle", Age: 2,
			Description: "Daisy is an intelligent toy poodle with a hypoallergenic coat. She's energetic, smart, and loves to learn tricks.",
			QuickFacts:  []string{"Hypoallergenic", "Highly intelligent", "Loves tricks", "Great for allergies"}},
		{ID: "pet_10", Name: "Shadow", Species: model.SpeciesCat, Breed: "Black Cat", Age: 5,
			Description: "Shadow is a mysterious black cat with golden eyes. He's affectionate, calm, and brings good luck!",
			QuickFacts:  []string{"Sleek black coat", "Very affectionate", "Calm demeanor", "Lucky charm"}},
		{ID: "pet_11", Name: "Coco", Species: model.SpeciesBird, Breed: "Cockatiel", Age: 2,
			Description: "Coco is a friendly cockatiel who loves to whistle and interact with people. She's social and entertaining.",
			QuickFacts:  []string{"Loves whistling", "Very social", "Hand-tamed", "Playful character"}},
		{ID: "pet_12", Name: "Bella", Species: model.SpeciesCat, Breed: "Maine Coon", Age: 3,
			Description: "Bella is a majestic Maine Coon with a playful personality. She's large, fluffy, and loves interactive toys.",
			QuickFacts:  []string{"Large breed", "Playful nature", "Good with children", "Dog-like personality"}},
	}
	for i := range pets {
		pets[i].ImageURLs = petImages(pets[i].ID, pets[i].Name)
	}
	return pets
}

// petImages mirrors the asset folder layout: assets/pets/<id>_<name>/<name>N.png.
func petImages(id, name string) []string {
	folder := fmt.Sprintf("%s_%s", id, strings.ToLower(name))
	lower := strings.ToLower(name)
	return []string{
		fmt.Sprintf("assets/pets/%s/%s.png", folder, lower),
		fmt.Sprintf("assets/pets/%s/%s1.png", folder, lower),
		fmt.Sprintf("assets/pets/%s/%s2.png", folder, lower),
		fmt.Sprintf("assets/pets/%s/%s3.png", folder, lower),
	}
}

func Services() []model.Service {
	return []model.Service{
		{ID: "service_01", Name: "Full Grooming Package",
			Description: "A complete pampering session for your pet.",
			Price:       decimal.NewFromInt(1500), Duration: 120,
			Activities: []string{"Warm bath", "Haircut", "Nail trim"},
			ImageURL:   "assets/services/grooming.png"},
		{ID: "service_02", Name: "Annual Health Checkup",
			Description: "A comprehensive veterinary examination.",
			Price:       decimal.NewFromInt(2500), Duration: 45,
			Activities: []string{"Physical exam", "Vaccinations", "Parasite check"},
			ImageURL:   "assets/services/checkup.png"},
		{ID: "service_03", Name: "Basic Obedience Training",
			Description: "A 4-week group course for essential commands.",
			Price:       decimal.NewFromInt(8000), Duration: 60,
			Activities: []string{"Sit, stay, come", "Leash manners", "Socialization"},
			ImageURL:   "assets/services/training.png"},
		{ID: "service_04", Name: "Pet Sitting (Per Day)",
			Description: "Peace of mind while you're away.",
			Price:       decimal.NewFromInt(1000), Duration: 1440,
			Activities: []string{"Two walks", "Playtime", "Feeding"},
			ImageURL:   "assets/services/sitting.png"},
		{ID: "service_05", Name: "Dog Walking (30 min)",
			Description: "A refreshing 30-minute walk for your dog.",
			Price:       decimal.NewFromInt(500), Duration: 30,
			Activities: []string{"30-min walk", "Water break", "Paw wipe-down"},
			ImageURL:   "assets/services/walking.png"},
	}
}

func Products() []model.Product {
	return []model.Product{
		{ID: "prod_01", Name: "Premium Pet Food", Price: decimal.NewFromInt(1500), Image: "assets/products/petfood.png"},
		{ID: "prod_02", Name: "Nutritious Pet Food", Price: decimal.NewFromInt(1350), Image: "assets/products/petfood.png"},
		{ID: "prod_03", Name: "Organic Pet Food", Price: decimal.NewFromInt(1800), Image: "assets/products/petfood.png"},
		{ID: "prod_04", Name: "Gourmet Pet Food", Price: decimal.NewFromInt(2000), Image: "assets/products/petfood.png"},
	}
}

// DemoBooking occupies a morning slot five days out so slot conflicts are
// observable on a fresh install.
func DemoBooking(now time.Time) model.Booking {
	return model.Booking{
		ServiceID: "service_01",
		Date:      now.AddDate(0, 0, 5).Format("2006-01-02"),
		TimeSlot:  model.SlotMorning,
		Status:    model.BookingConfirmed,
	}
}
