package main

import (
	"playfinder/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VenueModel{},
		model.VenueCategoryModel{},
		model.PhotoModel{},
		model.OfferModel{},
		model.ReviewModel{},
		model.FavoriteModel{},
		model.ClaimModel{},
		model.UserModel{},
		model.UserCredentialModel{},
		model.UserProfileModel{},
		model.RefreshTokenModel{},
		model.NewsletterSubscriptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
