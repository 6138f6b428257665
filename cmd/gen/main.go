package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserProfileModel{},
		model.RefreshTokenModel{},
		model.OfferModel{},
		model.OfferDetailModel{},
		model.OrderModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
