package messages

// JoinRequest is sent by a client after connecting to request a hero.
type JoinRequest struct {
	Version    string
	PlayerName string
	Class      string // Hero class name, e.g. "Tank"
}
