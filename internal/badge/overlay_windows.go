//go:build windows

package badge

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/logging"
)

var (
	clsidTaskbarList  = ole.NewGUID("{56FDF344-FD6D-11d0-958A-006097C9A090}")
	iidITaskbarList3  = ole.NewGUID("{ea1afb91-9e28-4b86-90e9-9e9f8a5eefaf}")
	errWindowNotFound = errors.New("main window not found")

	user32         = windows.NewLazySystemDLL("user32.dll")
	procCreateIcon = user32.NewProc("CreateIcon")
)

// ITaskbarList3 vtable slots
const (
	vtHrInit         = 3
	vtSetOverlayIcon = 18
	vtSize           = 21
)

const (
	sFalse          = 0x00000001
	rpcEChangedMode = 0x80010106
)

type overlayRenderer struct {
	className   string
	windowTitle string
	logger      *logging.Logger
}

func newPlatformRenderer(opts Options) Renderer {
	return &overlayRenderer{
		className:   opts.WindowClass,
		windowTitle: opts.WindowTitle,
		logger:      opts.Logger,
	}
}

func (o *overlayRenderer) Name() string { return "overlay" }

// Update installs the red dot overlay on the taskbar button when count > 0
// and removes it otherwise.
func (o *overlayRenderer) Update(count int) error {
	hwnd, err := o.findWindow()
	if err != nil {
		return err
	}

	// COM apartments are per thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) {
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
		switch uint32(oleErr.Code()) {
		case sFalse:
			defer ole.CoUninitialize()
		case rpcEChangedMode:
			// already initialised as MTA on this thread
		default:
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
	} else {
		defer ole.CoUninitialize()
	}

	unk, err := ole.CreateInstance(clsidTaskbarList, iidITaskbarList3)
	if err != nil {
		return fmt.Errorf("create TaskbarList: %w", err)
	}
	defer unk.Release()

	vtbl := (*[vtSize]uintptr)(unsafe.Pointer(unk.RawVTable))
	self := uintptr(unsafe.Pointer(unk))

	if hr, _, _ := syscall.SyscallN(vtbl[vtHrInit], self); int32(hr) < 0 {
		return fmt.Errorf("ITaskbarList3.HrInit: %w", ole.NewError(hr))
	}

	if count <= 0 {
		empty, _ := windows.UTF16PtrFromString("")
		if hr, _, _ := syscall.SyscallN(vtbl[vtSetOverlayIcon], self, uintptr(hwnd), 0, uintptr(unsafe.Pointer(empty))); int32(hr) < 0 {
			return fmt.Errorf("ITaskbarList3.SetOverlayIcon: %w", ole.NewError(hr))
		}
		return nil
	}

	hicon, err := createIcon(RedDot())
	if err != nil {
		return err
	}
	defer win.DestroyIcon(hicon)

	tip, _ := windows.UTF16PtrFromString(constants.BadgeTooltip)
	if hr, _, _ := syscall.SyscallN(vtbl[vtSetOverlayIcon], self, uintptr(hwnd), uintptr(hicon), uintptr(unsafe.Pointer(tip))); int32(hr) < 0 {
		return fmt.Errorf("ITaskbarList3.SetOverlayIcon: %w", ole.NewError(hr))
	}

	o.logger.Debug().Int("count", count).Msg("Taskbar overlay installed")
	return nil
}

func (o *overlayRenderer) findWindow() (win.HWND, error) {
	class, err := windows.UTF16PtrFromString(o.className)
	if err != nil {
		return 0, err
	}
	var title *uint16
	if o.windowTitle != "" {
		if title, err = windows.UTF16PtrFromString(o.windowTitle); err != nil {
			return 0, err
		}
	}

	hwnd := win.FindWindow(class, title)
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: class %q title %q", errWindowNotFound, o.className, o.windowTitle)
	}
	return hwnd, nil
}

func createIcon(ic Icon) (win.HICON, error) {
	r, _, callErr := procCreateIcon.Call(
		0,
		uintptr(ic.Width),
		uintptr(ic.Height),
		1,  // planes
		32, // bits per pixel
		uintptr(unsafe.Pointer(&ic.AND[0])),
		uintptr(unsafe.Pointer(&ic.XOR[0])),
	)
	if r == 0 {
		return 0, fmt.Errorf("CreateIcon: %w", callErr)
	}
	return win.HICON(r), nil
}
