package domain

// DefaultCapacity applies to any room type not in the capacity table.
const DefaultCapacity = 1

// roomCapacities maps a room type to its maximum simultaneous occupants.
var roomCapacities = map[string]int{
	"simple":       1,
	"double":       2,
	"suite":        4,
	"family":       6,
	"deluxe":       2,
	"economy":      1,
	"presidential": 6,
	"triple":       3,
	"shared":       8,
}

// Capacity returns the maximum occupancy for a room type.
func Capacity(roomType string) int {
	if max, ok := roomCapacities[roomType]; ok {
		return max
	}
	return DefaultCapacity
}

// IsAvailable reports whether a room of the given type can take one more
// guest given its current occupant count.
func IsAvailable(roomType string, occupants int) bool {
	return occupants < Capacity(roomType)
}
