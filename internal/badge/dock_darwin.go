//go:build darwin

package badge

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>
#include <stdlib.h>

static void set_dock_badge(const char *label) {
	@autoreleasepool {
		NSString *text = label ? [NSString stringWithUTF8String:label] : nil;
		[text retain];
		dispatch_async(dispatch_get_main_queue(), ^{
			[[NSApp dockTile] setBadgeLabel:text];
			[text release];
		});
	}
}
*/
import "C"

import (
	"strconv"
	"unsafe"

	"github.com/pakemessenger/messenger/internal/logging"
)

type dockRenderer struct {
	logger *logging.Logger
}

func newPlatformRenderer(opts Options) Renderer {
	return &dockRenderer{logger: opts.Logger}
}

func (d *dockRenderer) Name() string { return "dock" }

// Update sets the dock tile badge label. Non-positive counts clear it.
func (d *dockRenderer) Update(count int) error {
	if count <= 0 {
		C.set_dock_badge(nil)
		return nil
	}

	label := C.CString(strconv.Itoa(count))
	defer C.free(unsafe.Pointer(label))
	C.set_dock_badge(label)

	d.logger.Debug().Int("count", count).Msg("Dock badge updated")
	return nil
}
