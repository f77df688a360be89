//go:build ignore

// Seeds dev engagement data: guest comments with replies and a spread of
// likes across a few catalog posts.
//
// Usage: go run scripts/seed_engagement.go
// Reads DATABASE_URL from the environment.

package main

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"os"

	_ "github.com/lib/pq"
)

var postCodes = []string{"B8k2xQvNpL3", "C1mRtYwEo92", "D4nGhJkLm57"}

var guestNames = []string{
	"sarah_j", "mike_c", "jess_r", "dav_n", "em_w", "james_p",
	"ash_g", "rob_k", "jen_l", "will_m", "amanda_j", "dan_b",
}

var commentTexts = []string{
	"This shot is incredible, what lens was this?",
	"The colors here are unreal.",
	"Been following since the early days, this might be my favorite yet.",
	"Where was this taken?",
	"Golden hour doing all the work, and I mean that as a compliment.",
	"Saved for inspiration. The composition is perfect.",
	"How long did you wait for this light?",
	"This belongs in a gallery.",
	"The framing on this one is something else.",
	"Instant classic.",
}

var replyTexts = []string{
	"Agreed, came here to say the same thing.",
	"It says in an earlier post it was shot on a 35mm prime.",
	"Right? I keep coming back to it.",
	"Looks like the coast near Lisbon to me.",
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	rng := rand.New(rand.NewSource(42))
	totalComments := 0
	totalLikes := 0

	for _, code := range postCodes {
		// A handful of top-level guest comments per post
		n := 4 + rng.Intn(5)
		var rootIDs []int64
		for i := 0; i < n; i++ {
			name := guestNames[rng.Intn(len(guestNames))]
			text := commentTexts[rng.Intn(len(commentTexts))]

			var id int64
			err := db.QueryRow(`
				INSERT INTO comments (post_code, guest_name, text)
				VALUES ($1, $2, $3)
				RETURNING id
			`, code, name, text).Scan(&id)
			if err != nil {
				log.Fatal("Failed to insert comment:", err)
			}
			rootIDs = append(rootIDs, id)
			totalComments++
		}

		// Some replies
		for i := 0; i < n/2; i++ {
			parent := rootIDs[rng.Intn(len(rootIDs))]
			name := guestNames[rng.Intn(len(guestNames))]
			text := replyTexts[rng.Intn(len(replyTexts))]

			_, err := db.Exec(`
				INSERT INTO comments (post_code, guest_name, parent_id, text)
				VALUES ($1, $2, $3, $4)
			`, code, name, parent, text)
			if err != nil {
				log.Fatal("Failed to insert reply:", err)
			}
			totalComments++
		}

		// Post likes from synthetic anonymous fingerprints
		for i := 0; i < 10+rng.Intn(30); i++ {
			fp := fakeFingerprint(rng)
			_, err := db.Exec(`
				INSERT INTO post_likes (post_code, fingerprint)
				VALUES ($1, $2)
				ON CONFLICT (post_code, fingerprint) DO NOTHING
			`, code, fp)
			if err != nil {
				log.Fatal("Failed to insert post like:", err)
			}
			totalLikes++
		}

		// Comment likes
		for _, id := range rootIDs {
			for i := 0; i < rng.Intn(4); i++ {
				fp := fakeFingerprint(rng)
				_, err := db.Exec(`
					INSERT INTO comment_likes (comment_id, fingerprint)
					VALUES ($1, $2)
					ON CONFLICT (comment_id, fingerprint) DO NOTHING
				`, id, fp)
				if err != nil {
					log.Fatal("Failed to insert comment like:", err)
				}
				totalLikes++
			}
		}
	}

	fmt.Printf("Seeded %d comments and %d likes across %d posts\n",
		totalComments, totalLikes, len(postCodes))
}

func fakeFingerprint(rng *rand.Rand) string {
	ip := fmt.Sprintf("203.0.113.%d", rng.Intn(255))
	sum := sha256.Sum256([]byte(ip + ":seed-agent"))
	return hex.EncodeToString(sum[:])
}
