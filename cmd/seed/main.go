package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/andriwibowo/blognest/config"
	"github.com/andriwibowo/blognest/internal/domain/entity"
	mongoinfra "github.com/andriwibowo/blognest/internal/infrastructure/mongodb"
	"github.com/andriwibowo/blognest/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	client, err := mongoinfra.NewClient(cfg.MongoURI, cfg.MongoMaxPoolSize, cfg.MongoMinPoolSize)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongoinfra.NewUserRepository(db)
	blogs := mongoinfra.NewBlogRepository(db)

	email := "demo@blognest.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{Name: "Demo User", Email: email, Password: hash}
	if err := users.Create(ctx, u); err != nil {
		// Already seeded; reuse the existing account.
		existing, gerr := users.GetByEmail(ctx, email)
		if gerr != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		u = existing
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)

	samples := []entity.Blog{
		{
			User:       u.ID,
			Title:      "Hello, Blognest",
			Caption:    "first post",
			Desc:       "A short tour of what this blog platform can do.",
			Category:   entity.CategoryTechnology,
			AuthorName: u.Name,
		},
		{
			User:       u.ID,
			Title:      "Slow mornings",
			Caption:    "keeping a routine",
			Desc:       "Why starting the day without a screen changed everything.",
			Category:   entity.CategoryLifestyle,
			AuthorName: u.Name,
		},
	}
	for i := range samples {
		if err := blogs.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("failed to seed blog %q: %v", samples[i].Title, err)
		}
		fmt.Printf("seeded blog: id=%s title=%q\n", samples[i].ID, samples[i].Title)
	}
}
