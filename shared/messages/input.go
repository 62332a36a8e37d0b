package messages

// MoveInput is sent from client to server each frame the player steers
// their hero. X and Y are in -1..1.
type MoveInput struct {
	Sequence uint32
	X, Y     float64
}
