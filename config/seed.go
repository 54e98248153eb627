package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/models"
)

// SeedDemoData populates an empty database with a small demo graph: four
// users, six posts, four follow edges, four likes and three comments. It is
// a no-op when users already exist or when seeding is disabled.
func SeedDemoData(db *gorm.DB) {
	if !Get().SeedDemoData {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("seed: failed to count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	users := []models.User{
		{Username: "alice", Email: "alice@example.com", Bio: "Hi, I am Alice!", AvatarURL: "https://i.pravatar.cc/150?img=1"},
		{Username: "bob", Email: "bob@example.com", Bio: "Bob here!", AvatarURL: "https://i.pravatar.cc/150?img=2"},
		{Username: "carol", Email: "carol@example.com", Bio: "Carol in the house.", AvatarURL: "https://i.pravatar.cc/150?img=3"},
		{Username: "dave", Email: "dave@example.com", Bio: "Dave is here.", AvatarURL: "https://i.pravatar.cc/150?img=4"},
	}
	passwords := []string{"password1", "password2", "password3", "password4"}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(passwords[i]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			users[i].PasswordHash = string(hash)
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}

		alice, bob, carol, dave := users[0], users[1], users[2], users[3]

		posts := []models.Post{
			{UserID: alice.ID, Title: "Hello World", Content: "This is my first post!"},
			{UserID: bob.ID, Title: "Bob Post", Content: "Bob is posting something cool."},
			{UserID: carol.ID, Title: "Carol Post", Content: "Carol shares her thoughts."},
			{UserID: alice.ID, Title: "Another Post", Content: "Alice again!"},
			{UserID: dave.ID, Title: "Dave Post", Content: "Dave joins the party."},
			{UserID: bob.ID, Title: "Bob Again", Content: "Bob with another post."},
		}
		for i := range posts {
			if err := tx.Create(&posts[i]).Error; err != nil {
				return err
			}
		}

		follows := []models.Follow{
			{FollowerID: alice.ID, FollowedID: bob.ID},
			{FollowerID: alice.ID, FollowedID: carol.ID},
			{FollowerID: bob.ID, FollowedID: alice.ID},
			{FollowerID: carol.ID, FollowedID: dave.ID},
		}
		for i := range follows {
			if err := tx.Create(&follows[i]).Error; err != nil {
				return err
			}
		}

		likes := []models.Like{
			{UserID: alice.ID, PostID: posts[1].ID},
			{UserID: bob.ID, PostID: posts[0].ID},
			{UserID: carol.ID, PostID: posts[0].ID},
			{UserID: dave.ID, PostID: posts[2].ID},
		}
		for i := range likes {
			if err := tx.Create(&likes[i]).Error; err != nil {
				return err
			}
		}

		comments := []models.Comment{
			{UserID: bob.ID, PostID: posts[0].ID, Content: "Nice post!"},
			{UserID: carol.ID, PostID: posts[0].ID, Content: "Welcome!"},
			{UserID: alice.ID, PostID: posts[1].ID, Content: "Thanks Bob!"},
		}
		for i := range comments {
			if err := tx.Create(&comments[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("seed: failed to create demo data: %v", err)
		return
	}
	log.Printf("seed: created %d demo users", len(users))
}
