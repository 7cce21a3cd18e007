package storage

import "aurora/models"

func strPtr(s string) *string { return &s }

// SampleProducts is the kiosk's demo catalog. Ids are fixed so clients and
// tests can refer to them directly.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Cerveja Skol 350ml",
			Brand:         "Skol",
			Category:      "Bebidas",
			Price:         "3.50",
			OriginalPrice: strPtr("4.00"),
			Description:   strPtr("Cerveja lager gelada"),
			Barcode:       strPtr("7891234567890"),
			Rating:        "4.2",
			InStock:       true,
			IconType:      "wine",
		},
		{
			ID:            "2",
			Name:          "Tênis Nike Air Max",
			Brand:         "Nike",
			Category:      "Roupas",
			Price:         "199.90",
			OriginalPrice: strPtr("250.00"),
			Description:   strPtr("Tênis esportivo confortável"),
			Barcode:       strPtr("7891234567891"),
			Rating:        "4.8",
			InStock:       true,
			IconType:      "shirt",
		},
		{
			ID:          "3",
			Name:        "Maçã Fuji Kg",
			Brand:       "Hortifruti",
			Category:    "Alimentação",
			Price:       "8.90",
			Description: strPtr("Maçã fresca e doce"),
			Barcode:     strPtr("7891234567892"),
			Rating:      "4.1",
			InStock:     true,
			IconType:    "apple",
		},
		{
			ID:          "4",
			Name:        "Carne Bovina Kg",
			Brand:       "Açougue Premium",
			Category:    "Alimentação",
			Price:       "32.90",
			Description: strPtr("Carne bovina de primeira qualidade"),
			Barcode:     strPtr("7891234567893"),
			Rating:      "4.9",
			InStock:     true,
			IconType:    "beef",
		},
	}
}
