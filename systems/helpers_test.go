package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type testArena struct {
	t     *testing.T
	world donburi.World
	ids   *factory.LocalIDs
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w)
	return &testArena{t: t, world: w, ids: &factory.LocalIDs{}}
}

func (a *testArena) spawn(class cfg.CharacterType, x, y float64) *donburi.Entry {
	a.t.Helper()
	entry, err := factory.CreateCharacter(a.world, a.ids, class, components.Vector{X: x, Y: y})
	if err != nil {
		a.t.Fatalf("spawn %s: %v", class, err)
	}
	return entry
}

func (a *testArena) player(entry *donburi.Entry) *ActionPlayer {
	return NewActionPlayer(a.world, entry, Catalog, zap.NewNop())
}

// tick runs the simulation systems in server order.
func (a *testArena) tick(n int) {
	for range n {
		updateAI(a.world)
		advanceActions(a.world, Catalog)
		updateAnimators(a.world)
		updateActionFX(a.world)
		updateEffects(a.world)
	}
}

func networkID(t *testing.T, entry *donburi.Entry) esync.NetworkId {
	t.Helper()
	id := esync.GetNetworkId(entry)
	if id == nil {
		t.Fatal("entry has no network id")
	}
	return *id
}

func health(entry *donburi.Entry) int {
	return components.Health.Get(entry).Current
}

func netAction(entry *donburi.Entry) *netcomponents.NetActiveActionData {
	return netcomponents.NetActiveAction.Get(entry)
}
