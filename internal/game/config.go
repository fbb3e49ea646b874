package game

import "github.com/samdwyer/wumpus/internal/world"

// Where the Wumpus takes its step from.
const (
	// OriginMonster moves the Wumpus to a neighbour of its own cell.
	OriginMonster = "monster"
	// OriginPlayer drops the Wumpus next to the player, as the classic game did.
	OriginPlayer = "player"
)

// Config holds game configuration options.
type Config struct {
	// Size is the side length of the square cave.
	Size int `mapstructure:"size"`
	// Arrows is the starting number of arrows.
	Arrows int `mapstructure:"arrows"`
	// Seed for random number generation. Used for reproducible caves.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `mapstructure:"seed"`
	// MonsterMoveChance is the per-turn probability that the Wumpus moves.
	MonsterMoveChance float64 `mapstructure:"monster_move_chance"`

	Rules Rules `mapstructure:"rules"`
}

// Rules toggles deviations from the classic game.
type Rules struct {
	// MonsterOrigin is OriginMonster or OriginPlayer.
	MonsterOrigin string `mapstructure:"monster_origin"`
	// LegacySmell compares the player against the grid size instead of the
	// Wumpus, which almost never fires.
	LegacySmell bool `mapstructure:"legacy_smell"`
	// LethalHazards ends the game when the player walks into a pit or meets
	// the Wumpus. The classic game has no way to lose.
	LethalHazards bool `mapstructure:"lethal_hazards"`
	// EnforceArrows refuses to shoot once the quiver is empty.
	EnforceArrows bool `mapstructure:"enforce_arrows"`
}

// DefaultConfig returns the classic 4x4 cave with a single arrow.
func DefaultConfig() Config {
	return Config{
		Size:              world.DefaultSize,
		Arrows:            1,
		MonsterMoveChance: world.DefaultMonsterMoveChance,
		Rules: Rules{
			MonsterOrigin: OriginMonster,
		},
	}
}
