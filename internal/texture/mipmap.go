package texture

// maxMipLevels is the deepest chain Enfusion textures use.
const maxMipLevels = 11

// mipCount returns the number of levels down to 1x1, capped at maxMipLevels.
func mipCount(width, height int) int {
	count := 1
	for width > 1 || height > 1 {
		count++
		width = max(width/2, 1)
		height = max(height/2, 1)
	}

	return min(count, maxMipLevels)
}

// mipDimension returns the size of base at the given level.
func mipDimension(base, level int) int {
	return max(base>>level, 1)
}

const maxInt32 = int(^uint32(0) >> 1)

func i32FromInt(n int) (int32, error) {
	if n < 0 || n > maxInt32 {
		return 0, ErrSizeOverflow
	}

	return int32(n), nil
}

func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > uint64(^uint32(0)) {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}
