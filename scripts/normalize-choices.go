package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

const (
	characterPrefix   = "character:"
	playerIndexPrefix = "character:player:"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning stored characters...")

	var corruptedKeys []string
	legacy := make(map[string][]byte)
	var checkedCount int

	iter := client.Scan(ctx, 0, characterPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var c entities.Character
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if c.ID == "" || characterPrefix+c.ID != key {
			fmt.Printf("✗ %s holds character %q\n", key, c.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		canonical, err := json.Marshal(&c)
		if err != nil {
			fmt.Printf("Error encoding %s: %v\n", key, err)
			continue
		}
		if !bytes.Equal(canonical, []byte(data)) {
			fmt.Printf("~ %s is stored in a legacy shape\n", key)
			legacy[key] = canonical
		}
		if c.Level < entities.MinLevel || c.Level > entities.MaxLevel {
			fmt.Printf("! %s has level %d outside %d-%d\n", key, c.Level, entities.MinLevel, entities.MaxLevel)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	stale := staleIndexEntries(ctx, client)

	fmt.Printf("\nChecked %d characters: %d legacy, %d corrupted, %d indexes with stale entries\n",
		checkedCount, len(legacy), len(corruptedKeys), len(stale))

	if len(legacy) == 0 && len(corruptedKeys) == 0 && len(stale) == 0 {
		fmt.Println("No problems found!")
		return
	}

	fmt.Print("\nRewrite legacy entries, DELETE corrupted entries and prune stale index entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for key, canonical := range legacy {
		// KeepTTL leaves any expiry set by hand untouched
		if err := client.Set(ctx, key, canonical, redis.KeepTTL).Err(); err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", key, err)
		} else {
			fmt.Printf("Rewrote %s\n", key)
		}
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for index, ids := range stale {
		if err := client.SRem(ctx, index, ids).Err(); err != nil {
			fmt.Printf("Failed to prune %s: %v\n", index, err)
		} else {
			fmt.Printf("Pruned %d entries from %s\n", len(ids), index)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// staleIndexEntries finds player index members whose character key is gone
func staleIndexEntries(ctx context.Context, client *redis.Client) map[string][]interface{} {
	stale := make(map[string][]interface{})

	iter := client.Scan(ctx, 0, playerIndexPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		index := iter.Val()
		ids, err := client.SMembers(ctx, index).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", index, err)
			continue
		}
		for _, id := range ids {
			n, err := client.Exists(ctx, characterPrefix+id).Result()
			if err != nil {
				fmt.Printf("Error checking %s: %v\n", id, err)
				continue
			}
			if n == 0 {
				fmt.Printf("✗ %s lists missing character %s\n", index, id)
				stale[index] = append(stale[index], id)
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during index scan:", err)
	}

	return stale
}
