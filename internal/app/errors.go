package app

import "github.com/pkg/errors"

// ErrNoGUI reports a binary built without the ebiten tag.
var ErrNoGUI = errors.New("the window requires building with the 'ebiten' tag")
