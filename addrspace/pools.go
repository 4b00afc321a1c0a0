// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace

import (
	"github.com/djherbis/buffer"
)

// defaultBufferSize is the size of the chunks an image payload is staged in.
const defaultBufferSize = 64 * 1024

// bufferPool is a pool of capacity buffers
var bufferPool = buffer.NewMemPoolAt(int64(defaultBufferSize))
