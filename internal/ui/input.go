package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// action is a viewer command triggered by input.
type action int

const (
	actionNone action = iota
	actionNext
	actionPrev
	actionFirst
	actionLast
	actionFlip
	actionCoordinates
	actionQuit
)

var keyBindings = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyArrowRight, actionNext},
	{ebiten.KeyArrowDown, actionNext},
	{ebiten.KeySpace, actionNext},
	{ebiten.KeyArrowLeft, actionPrev},
	{ebiten.KeyArrowUp, actionPrev},
	{ebiten.KeyHome, actionFirst},
	{ebiten.KeyEnd, actionLast},
	{ebiten.KeyF, actionFlip},
	{ebiten.KeyC, actionCoordinates},
	{ebiten.KeyEscape, actionQuit},
	{ebiten.KeyQ, actionQuit},
}

// pollAction returns the action for this frame's input, if any.
// A left click advances and a right click goes back.
func pollAction() action {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			return b.act
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return actionNext
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return actionPrev
	}
	return actionNone
}
