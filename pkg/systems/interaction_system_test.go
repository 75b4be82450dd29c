package systems

import (
	"testing"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/utils"
)

func TestHoverSuspendsAndResumes(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	f.interaction.HandlePointerEnter()
	if !state.IsSuspendedBy(components.SuspendHover) {
		t.Fatal("Pointer enter should suspend autoplay")
	}
	f.autoplay.Update(testFrame)
	if state.Offset != 0 {
		t.Errorf("Offset moved while hovering: %.4f", state.Offset)
	}

	f.interaction.HandlePointerLeave()
	if state.Paused() {
		t.Fatal("Pointer leave should resume immediately")
	}
	f.autoplay.Update(testFrame)
	if state.Offset == 0 {
		t.Error("Offset should advance after pointer leave")
	}
}

func TestDragWrapsNegativeOffset(t *testing.T) {
	f := newGalleryFixture(t, 4)
	half := f.layout.ComputeHalfExtent()
	state := f.state(t)

	f.interaction.HandleTouchStart(500)
	f.interaction.HandleTouchMove(505) // delta = -5

	if !approx(state.Offset, half-5) {
		t.Errorf("Expected offset %.1f, got %.4f", half-5, state.Offset)
	}
	if !state.WasDragging {
		t.Error("Movement of 5 should exceed the drag threshold")
	}
	if !state.Dragging || !state.IsSuspendedBy(components.SuspendTouch) {
		t.Error("Touch start should mark dragging and suspend")
	}
}

func TestDragUsesStartOffset(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)
	state.Offset = 100

	f.interaction.HandleTouchStart(500)
	f.interaction.HandleTouchMove(480)
	f.interaction.HandleTouchMove(470)

	if !approx(state.Offset, 130) {
		t.Errorf("Expected offset 130 (start 100 + delta 30), got %.4f", state.Offset)
	}
}

func TestSmallMoveIsNotDrag(t *testing.T) {
	f := newGalleryFixture(t, 4)
	f.interaction.HandleTouchStart(positionX(1))
	f.interaction.HandleTouchMove(positionX(1) - 3)
	f.interaction.HandleTouchEnd()

	if f.state(t).WasDragging {
		t.Fatal("Movement of 3 should not count as a drag")
	}
	// 轨道只移动了 3 像素，点击仍落在位置 1 上
	if !f.interaction.HandleClick(positionX(1)-3, 50) {
		t.Error("Click after a tap should open the lightbox")
	}
}

func TestDragThenClickSuppression(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	f.interaction.HandleTouchStart(600)
	f.interaction.HandleTouchMove(650)
	f.interaction.HandleTouchEnd()

	if !state.WasDragging {
		t.Fatal("Expected drag flag to be set")
	}
	if f.interaction.HandleClick(positionX(1), 50) {
		t.Error("Click immediately after drag should be swallowed")
	}
	if f.lightbox.IsOpen() {
		t.Error("Lightbox should not open after drag")
	}
	if state.WasDragging {
		t.Error("Drag flag should reset after the swallowed click")
	}

	if !f.interaction.HandleClick(positionX(1), 50) {
		t.Error("Next plain click should open the lightbox")
	}
	if !f.lightbox.IsOpen() {
		t.Error("Lightbox should be open after plain click")
	}
}

func TestTouchEndCooldown(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	f.interaction.HandleTouchStart(500)
	f.interaction.HandleTouchEnd()
	if !f.interaction.HasPendingResume() {
		t.Fatal("Touch end should schedule a resume")
	}

	f.interaction.Update(2.0)
	if !state.Paused() {
		t.Fatal("Autoplay should stay suspended during cooldown")
	}
	f.interaction.Update(0.6)
	if state.Paused() {
		t.Fatal("Autoplay should resume after 2.5s cooldown")
	}
	if f.interaction.HasPendingResume() {
		t.Error("Timer should be removed after firing")
	}
}

func TestLeaveDuringDragDoesNotResume(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	f.interaction.HandlePointerEnter()
	f.interaction.HandleTouchStart(500)
	f.interaction.HandlePointerLeave()

	if !state.Paused() {
		t.Fatal("Pointer leave during drag must not resume autoplay")
	}
	f.autoplay.Update(testFrame)
	f.interaction.Update(3.0)
	if !state.Paused() {
		t.Fatal("Autoplay must stay suspended while dragging")
	}

	f.interaction.HandleTouchEnd()
	f.interaction.Update(2.4)
	if !state.Paused() {
		t.Fatal("Autoplay should wait for the cooldown")
	}
	f.interaction.Update(0.2)
	if state.Paused() {
		t.Fatal("Autoplay should resume after cooldown")
	}
}

func TestSuspendMidCooldownCancelsResume(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	t.Run("pointer enter", func(t *testing.T) {
		f.interaction.HandleTouchStart(500)
		f.interaction.HandleTouchEnd()
		f.interaction.Update(1.0)

		f.interaction.HandlePointerEnter()
		if f.interaction.HasPendingResume() {
			t.Fatal("Pointer enter should cancel the pending resume")
		}
		f.interaction.Update(5.0)
		if !state.Paused() {
			t.Fatal("Autoplay should stay suspended while hovering")
		}
		f.interaction.HandlePointerLeave()
		if state.Paused() {
			t.Fatal("Pointer leave should resume")
		}
	})

	t.Run("second touch", func(t *testing.T) {
		f.interaction.HandleTouchStart(500)
		f.interaction.HandleTouchEnd()
		f.interaction.Update(2.0)

		// 新手势重新开始冷却
		f.interaction.HandleTouchStart(500)
		f.interaction.HandleTouchEnd()
		f.interaction.Update(2.0)
		if !state.Paused() {
			t.Fatal("First cooldown should have been cancelled")
		}
		f.interaction.Update(0.6)
		if state.Paused() {
			t.Fatal("Second cooldown should resume autoplay")
		}
	})
}

func TestLeaveCancelsPendingResume(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	f.interaction.HandlePointerEnter()
	f.interaction.HandleTouchStart(500)
	f.interaction.HandleTouchEnd()
	f.interaction.HandlePointerLeave()

	if f.interaction.HasPendingResume() {
		t.Error("Pointer leave should cancel the pending resume")
	}
	if state.Paused() {
		t.Error("Pointer leave after drag should resume immediately")
	}
}

func TestHandleGestureDispatch(t *testing.T) {
	f := newGalleryFixture(t, 4)
	state := f.state(t)

	events := []utils.GestureEvent{
		{Kind: utils.GestureHoverEnter, X: 600, Y: 50, InRegion: true},
		{Kind: utils.GesturePress, X: 600, Y: 50, InRegion: true},
		{Kind: utils.GestureMove, X: 560, Y: 50, InRegion: true},
		{Kind: utils.GestureRelease, X: 560, Y: 50, InRegion: true},
		{Kind: utils.GestureClick, X: 560, Y: 50, InRegion: true},
	}
	for _, ev := range events {
		f.interaction.HandleGesture(ev)
	}

	if !approx(state.Offset, 40) {
		t.Errorf("Expected offset 40 after drag, got %.4f", state.Offset)
	}
	if f.lightbox.IsOpen() {
		t.Error("Click after drag should be swallowed")
	}
	if !state.IsSuspendedBy(components.SuspendHover) {
		t.Error("Still hovering, expected hover suspension")
	}

	f.interaction.HandleGesture(utils.GestureEvent{Kind: utils.GestureHoverLeave})
	if state.Paused() {
		t.Error("Expected Running after hover leave")
	}
}

func TestClickOutsideItems(t *testing.T) {
	f := newGalleryFixture(t, 4)
	if f.interaction.HandleClick(positionX(0), 500) {
		t.Error("Click outside track should not open lightbox")
	}
	if f.interaction.HandleClick(testItemHeight+testGap/2, 50) {
		t.Error("Click in gap should not open lightbox")
	}
}

func TestZeroResumeDelay(t *testing.T) {
	f := newGalleryFixture(t, 4)
	f.interaction.resumeDelay = 0

	f.interaction.HandleTouchStart(500)
	f.interaction.HandleTouchEnd()
	if f.state(t).Paused() {
		t.Error("Zero resume delay should resume immediately")
	}
}

func TestDragOnEmptyTrack(t *testing.T) {
	f := newGalleryFixture(t, 0)
	f.interaction.HandleTouchStart(100)
	f.interaction.HandleTouchMove(20)
	if got := f.state(t).Offset; got != 0 {
		t.Errorf("Expected offset 0 on empty track, got %.4f", got)
	}
	if f.interaction.HandleClick(50, 50) {
		t.Error("Click on empty track should do nothing")
	}
}

// TestTapOpenCancelsCooldown 轻点打开灯箱时冷却作废，关闭后立即恢复
func TestTapOpenCancelsCooldown(t *testing.T) {
	f := newGalleryFixture(t, 4)

	f.interaction.HandleTouchStart(positionX(1))
	f.interaction.HandleTouchEnd()
	if !f.interaction.HasPendingResume() {
		t.Fatal("Touch end should schedule a resume")
	}
	if !f.interaction.HandleClick(positionX(1), 50) {
		t.Fatal("Tap should open the lightbox")
	}
	if f.interaction.HasPendingResume() {
		t.Error("Opening the lightbox should cancel the pending resume")
	}
	state := f.state(t)
	if state.IsSuspendedBy(components.SuspendTouch) {
		t.Error("Touch suspension should be released once the lightbox takes over")
	}
	if !state.IsSuspendedBy(components.SuspendLightbox) {
		t.Error("Lightbox should suspend autoplay")
	}

	f.lightbox.Close()
	if f.autoplay.State() != components.AutoplayRunning {
		t.Errorf("Expected autoplay running right after close, got %s", f.autoplay.State())
	}
}
