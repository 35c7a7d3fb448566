package cache

import (
	"strconv"
)

// Lifetime leaderboard key, shared by the memory and Redis tiers.
const LifetimeLeaderboardKey = "leaderboard:lifetime"

// SeasonLeaderboardKey generates the cache key of one season's leaderboard.
func SeasonLeaderboardKey(number int) string {
	return "leaderboard:season:" + strconv.Itoa(number)
}
