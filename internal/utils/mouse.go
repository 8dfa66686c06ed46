package utils

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn   *xgb.Conn
	XRoot   xproto.Window
	XScreen *xproto.ScreenInfo
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return fmt.Errorf("cannot connect to X server: %w", err)
	}

	setup := xproto.Setup(XConn)
	XScreen = setup.DefaultScreen(XConn)
	XRoot = XScreen.Root
	return nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}

// GetGlobalMousePosition returns the pointer position on the root window.
// A borderless wallpaper window sits below other windows and never receives
// pointer events of its own.
func GetGlobalMousePosition() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(XConn, XRoot).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}

	return int(reply.RootX), int(reply.RootY), nil
}

// GetRootSize returns the size of the default screen in pixels.
func GetRootSize() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}
	return int(XScreen.WidthInPixels), int(XScreen.HeightInPixels), nil
}
