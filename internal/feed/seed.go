package feed

import (
	"fmt"
	"time"
)

// DefaultUser is the acting identity a session starts with until a real
// account flow replaces it.
func DefaultUser() User {
	return User{
		ID:        "u1",
		Username:  "lumina.design",
		FullName:  "Lumina Vision",
		AvatarURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=200&auto=format&fit=crop",
		Bio:       "Curadoria do futuro do design de interfaces.\nArte Digital • IA • Estética",
		Followers: 14200,
		Following: 342,
	}
}

// SeedPosts returns the sample feed a fresh session starts with. The data is
// deterministic so tests can rely on ids and ordering; index 0 is newest.
func SeedPosts(now time.Time) []Post {
	captions := []string{
		"Explorando as luzes de neon em Tóquio 🌃",
		"Minimalismo é a chave da verdadeira elegância. 🤍",
		"Dias de estúdio e café ☕✨",
		"Entre o concreto e o céu 🏙️",
		"Cores que só o fim de tarde tem 🌅",
	}

	posts := make([]Post, 0, len(captions))
	for i, caption := range captions {
		author := User{
			ID:        fmt.Sprintf("u%d", i+5),
			Username:  fmt.Sprintf("creator_%d", i),
			FullName:  fmt.Sprintf("Creator %d", i),
			AvatarURL: fmt.Sprintf("https://picsum.photos/200?random=%d", i+20),
		}
		posts = append(posts, Post{
			ID:        fmt.Sprintf("p%d", i),
			UserID:    author.ID,
			User:      author,
			ImageURL:  fmt.Sprintf("https://picsum.photos/800/1000?random=%d", i+50),
			Caption:   caption,
			Likes:     100 + i*73,
			Comments:  []Comment{},
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
			LikedByMe: false,
		})
	}
	return posts
}

// SeedStories returns the sample story rail. Stories are read-only in this
// core; there is no mark-seen operation.
func SeedStories() []Story {
	stories := make([]Story, 0, 8)
	for i := 0; i < 8; i++ {
		stories = append(stories, Story{
			ID:        fmt.Sprintf("s%d", i),
			UserID:    fmt.Sprintf("u%d", i+2),
			Username:  fmt.Sprintf("user_%d", i),
			AvatarURL: fmt.Sprintf("https://picsum.photos/200/300?random=%d", i),
			HasUnseen: i%3 != 0,
		})
	}
	return stories
}
