package catalog

import "strings"

// CategoryInfo describes one storefront category.
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Categories is the fixed category list, in declared order. The order matters:
// InferCategory breaks exact keyword-count ties in favor of the category that
// appears first here.
var Categories = []CategoryInfo{
	{ID: "games", Name: "Games", Description: "Games built for the Farcaster ecosystem, from casual mini-games to complex multiplayer experiences with on-chain achievements.", Icon: "🎮"},
	{ID: "social", Name: "Social", Description: "Apps that enhance your Farcaster experience with new ways to connect, share, and interact with each other, and the community.", Icon: "👥"},
	{ID: "finance", Name: "Finance", Description: "Tools for managing crypto assets, tracking investments, and participating in DeFi activities within the Farcaster ecosystem.", Icon: "💰"},
	{ID: "utility", Name: "Utility", Description: "Essential tools and services that enhance your Farcaster experience, from network explorers to data management utilities.", Icon: "🔧"},
	{ID: "productivity", Name: "Productivity", Description: "Apps to help you stay organized, manage tasks, and enhance your workflow while leveraging your Farcaster identity.", Icon: "✅"},
	{ID: "health-fitness", Name: "Health & Fitness", Description: "Track physical activity, monitor health metrics, and engage with wellness communities in the Farcaster ecosystem.", Icon: "💪"},
	{ID: "news-media", Name: "News & Media", Description: "Stay informed with curated content, journalism, and information services focused on crypto, Web3, and general interest topics.", Icon: "📰"},
	{ID: "music", Name: "Music", Description: "Discover, share, and experience music with apps that integrate streaming services and offer social music experiences.", Icon: "🎵"},
	{ID: "shopping", Name: "Shopping", Description: "Discover and purchase products, from physical goods to digital assets, with social commerce features and crypto payments.", Icon: "🛍️"},
	{ID: "education", Name: "Education", Description: "Learn and grow with educational content, courses, and knowledge-sharing communities focused on crypto and Web3 topics.", Icon: "🎓"},
	{ID: "developer-tools", Name: "Developer Tools", Description: "Resources, frameworks, and utilities for building and enhancing applications on the Farcaster protocol.", Icon: "👨‍💻"},
	{ID: "entertainment", Name: "Entertainment", Description: "Enjoy diverse experiences beyond gaming, including video content, interactive experiences, and creative entertainment.", Icon: "🍿"},
	{ID: "art-creativity", Name: "Art & Creativity", Description: "Create, share, and discover digital art and creative content, with tools for artistic expression and NFT creation.", Icon: "🎨"},
}

// categoryKeywords maps a category ID to the substrings that vote for it.
var categoryKeywords = map[string][]string{
	"games":           {"game", "play", "gaming", "puzzle", "quiz"},
	"social":          {"social", "chat", "connect", "community", "friends"},
	"finance":         {"finance", "money", "crypto", "trading", "wallet", "token"},
	"utility":         {"utility", "tool", "calculator", "converter"},
	"productivity":    {"productivity", "task", "todo", "calendar", "schedule"},
	"health-fitness":  {"health", "fitness", "workout", "exercise", "diet"},
	"news-media":      {"news", "media", "article", "blog", "feed"},
	"music":           {"music", "song", "playlist", "audio", "sound"},
	"shopping":        {"shop", "store", "market", "buy", "sell"},
	"education":       {"learn", "education", "academy", "course", "study", "tutorial"},
	"developer-tools": {"dev", "code", "api", "developer", "programming"},
	"entertainment":   {"entertainment", "fun", "watch", "stream"},
	"art-creativity":  {"art", "creative", "design", "draw", "paint"},
}

// ValidCategory reports whether id is one of the fixed category IDs.
func ValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// InferCategory guesses a category for the given free text by counting keyword
// substring hits per category. The category with the strictly greatest count
// wins; on exact ties the first category in the declared order is kept. Zero
// hits for every category yields "".
func InferCategory(text string) string {
	content := strings.ToLower(text)

	best := ""
	maxMatches := 0
	for _, c := range Categories {
		matches := 0
		for _, kw := range categoryKeywords[c.ID] {
			if strings.Contains(content, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = c.ID
		}
	}
	return best
}
