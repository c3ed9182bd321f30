package stateicon

import (
	"image"
	"strings"
	"testing"

	"stateicon-ebiten/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type driverFixture struct {
	src   *fakeSource
	atlas *IconAtlas
	pos   *Positioner
	drv   *Driver
	ents  []donburi.Entity
}

func newDriverFixture(t *testing.T, n int, advanceWhenHidden bool) *driverFixture {
	t.Helper()
	f := &driverFixture{
		src:   newFakeSource(),
		atlas: newTestAtlas(),
		ents:  newTestEntities(t, n),
	}
	f.pos = NewPositioner(PositionConfig{Mode: core.AnchorCenter, PageSize: 4}, 40)
	f.drv = NewDriver(NewAggregator(f.src), NewCompositor(f.atlas, DefaultCompositorStyle()), f.pos, advanceWhenHidden)
	return f
}

func (f *driverFixture) placeAll() {
	f.pos.BeginLayout()
	for i, e := range f.ents {
		f.pos.Place(e, image.Rect(0, i*40, 200, i*40+40))
	}
}

func (f *driverFixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.drv.Tick()
	}
}

func TestDriver_FirstTickComposes(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 10, 0)
	f.placeAll()

	f.ticks(1)

	inst, _ := f.pos.Lookup(f.ents[0])
	require.NotNil(t, inst.Composite())
	assert.Equal(t, 4*core.IconCellWidth, inst.Composite().Bounds().Dx())
	assert.Equal(t, 1, inst.Version())
	assert.Equal(t, StatePaged, inst.State())
	assert.Equal(t, 3, inst.PageCount())
}

func TestDriver_RebuildsOnlyOnPageBoundaries(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 10, 0)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(39)
	assert.Equal(t, 1, inst.Version())
	assert.Equal(t, 0, inst.PageIndex())

	f.ticks(1) // 40
	assert.Equal(t, 2, inst.Version())
	assert.Equal(t, 1, inst.PageIndex())

	f.ticks(40) // 80
	assert.Equal(t, 3, inst.Version())
	assert.Equal(t, 2, inst.PageIndex())
	assert.Equal(t, 2*core.IconCellWidth, inst.Composite().Bounds().Dx())

	f.ticks(40) // 120: 周回して先頭ページ
	assert.Equal(t, 4, inst.Version())
	assert.Equal(t, 0, inst.PageIndex())
	assert.Equal(t, 0, inst.ElapsedFrames())
}

func TestDriver_RebuildsOnEntryChange(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 2, 5)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(3)
	require.Equal(t, 1, inst.Version())

	f.src.setIcons(f.ents[0], 2, 4)
	f.ticks(1)
	assert.Equal(t, 2, inst.Version())
}

func TestDriver_ShrinkKeepsPageInRange(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 9, 0)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(100)
	require.Equal(t, 2, inst.PageIndex())

	f.src.setIcons(f.ents[0], 3, 0)
	f.ticks(1)
	assert.Equal(t, 0, inst.PageIndex())
	assert.Equal(t, 1, inst.PageCount())
	assert.Less(t, inst.ElapsedFrames(), 40)
	assert.Equal(t, 3*core.IconCellWidth, inst.Composite().Bounds().Dx())
}

func TestDriver_IdleWhenEntriesVanish(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 3, 0)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(5)
	require.Equal(t, StatePaged, inst.State())

	f.src.setIcons(f.ents[0], 0, 0)
	f.ticks(1)
	assert.Equal(t, StateIdle, inst.State())
	assert.Nil(t, inst.Composite())
	assert.Equal(t, 0, inst.ElapsedFrames())

	f.src.setIcons(f.ents[0], 1, 0)
	f.ticks(1)
	assert.Equal(t, StatePaged, inst.State())
	assert.NotNil(t, inst.Composite())
}

func TestDriver_AtlasNotReadyKeepsPreviousImage(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 2, 0)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(1)
	prev := inst.Composite()
	require.NotNil(t, prev)

	f.atlas.SetImage(nil)
	f.src.setIcons(f.ents[0], 3, 0)
	assert.NotPanics(t, func() { f.ticks(5) })
	assert.Same(t, prev, inst.Composite())
	assert.Equal(t, 1, inst.Version())

	f.atlas.SetImage(newTestAtlasImage(4))
	f.ticks(1)
	assert.Equal(t, 2, inst.Version())
	assert.Equal(t, 3*core.IconCellWidth, inst.Composite().Bounds().Dx())
}

func TestDriver_AtlasPendingFromStart(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.atlas.SetImage(nil)
	f.src.setIcons(f.ents[0], 2, 0)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(3)
	assert.Nil(t, inst.Composite())

	f.atlas.SetImage(newTestAtlasImage(4))
	f.ticks(1)
	assert.NotNil(t, inst.Composite())
}

func TestDriver_HiddenInstances(t *testing.T) {
	for _, advance := range []bool{true, false} {
		f := newDriverFixture(t, 2, advance)
		f.src.setIcons(f.ents[0], 6, 0)
		f.src.setIcons(f.ents[1], 6, 0)
		f.placeAll()
		f.ticks(10)

		// 2体目だけ再配置されない
		f.pos.BeginLayout()
		f.pos.Place(f.ents[0], image.Rect(0, 0, 200, 40))
		f.ticks(10)

		shown, _ := f.pos.Lookup(f.ents[0])
		hidden, _ := f.pos.Lookup(f.ents[1])
		assert.Equal(t, 20, shown.ElapsedFrames())
		if advance {
			assert.Equal(t, 20, hidden.ElapsedFrames())
		} else {
			assert.Equal(t, 10, hidden.ElapsedFrames())
		}
	}
}

func TestDriver_MissingEntityStaysIdle(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.placeAll()
	inst, _ := f.pos.Lookup(f.ents[0])

	f.ticks(50)
	assert.Equal(t, StateIdle, inst.State())
	assert.Nil(t, inst.Composite())
	assert.Equal(t, 0, inst.Version())
}

func TestDriver_Dump(t *testing.T) {
	f := newDriverFixture(t, 1, true)
	f.src.setIcons(f.ents[0], 2, 3)
	f.placeAll()
	f.ticks(1)

	out := f.drv.Dump(func(*RenderInstance) string { return "alpha" })
	assert.True(t, strings.HasPrefix(out, "alpha state=paged page=1/1"))
	assert.Contains(t, out, "[1:3] [2:3]")
}
