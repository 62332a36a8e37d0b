package protocol

import (
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition     uint = 10
	SyncIDNetActiveAction uint = 11
	SyncIDNetHealth       uint = 12
	SyncIDNetCharacter    uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Active action: no interpolation (discrete sequence changes)
	if err := esync.RegisterComponent(
		SyncIDNetActiveAction,
		netcomponents.NetActiveActionData{},
		netcomponents.NetActiveAction,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetHealth,
		netcomponents.NetHealthData{},
		netcomponents.NetHealth,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetCharacter,
		netcomponents.NetCharacterData{},
		netcomponents.NetCharacter,
	); err != nil {
		return err
	}

	return nil
}
