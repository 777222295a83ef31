package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/roadspline/internal/editor"
)

// keyBinding maps a key, with or without shift, to an edit.
type keyBinding struct {
	key   sdl.Scancode
	shift bool
}

var keymap = map[keyBinding]editor.Action{
	{sdl.SCANCODE_TAB, false}:          editor.ActionSelectNext,
	{sdl.SCANCODE_TAB, true}:           editor.ActionSelectPrevious,
	{sdl.SCANCODE_N, false}:            editor.ActionAppend,
	{sdl.SCANCODE_I, false}:            editor.ActionInsertAfter,
	{sdl.SCANCODE_DELETE, false}:       editor.ActionRemove,
	{sdl.SCANCODE_BACKSPACE, false}:    editor.ActionRemove,
	{sdl.SCANCODE_UP, false}:           editor.ActionMoveForward,
	{sdl.SCANCODE_DOWN, false}:         editor.ActionMoveBack,
	{sdl.SCANCODE_LEFT, false}:         editor.ActionMoveLeft,
	{sdl.SCANCODE_RIGHT, false}:        editor.ActionMoveRight,
	{sdl.SCANCODE_PAGEUP, false}:       editor.ActionMoveUp,
	{sdl.SCANCODE_PAGEDOWN, false}:     editor.ActionMoveDown,
	{sdl.SCANCODE_LEFT, true}:          editor.ActionYawLeft,
	{sdl.SCANCODE_RIGHT, true}:         editor.ActionYawRight,
	{sdl.SCANCODE_UP, true}:            editor.ActionPitchUp,
	{sdl.SCANCODE_DOWN, true}:          editor.ActionPitchDown,
	{sdl.SCANCODE_Q, false}:            editor.ActionRollLeft,
	{sdl.SCANCODE_E, false}:            editor.ActionRollRight,
	{sdl.SCANCODE_EQUALS, false}:       editor.ActionWiden,
	{sdl.SCANCODE_MINUS, false}:        editor.ActionNarrow,
	{sdl.SCANCODE_RIGHTBRACKET, false}: editor.ActionFiner,
	{sdl.SCANCODE_LEFTBRACKET, false}:  editor.ActionCoarser,
}

func actionFor(key sdl.Scancode, shift bool) editor.Action {
	return keymap[keyBinding{key, shift}]
}
