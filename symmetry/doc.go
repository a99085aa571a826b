// Package symmetry implements the dihedral transforms used to expand a base
// pattern or tile into its rotated and mirrored variants.
//
// All functions are pure: inputs are never modified and results are freshly
// allocated.
//
// Conventions (row-major, (x,y) with y growing down):
//
//   - Rotate:  rot(x, y)    = src(n-1-y, x)   i.e. rotated[n-1-j][i] = src[i][j]
//   - Mirror:  mirror(x, y) = src(n-1-x, y)   (horizontal flip)
//
// The same rotation is used by the overlapping builder and by tile image
// expansion, so pattern variants and tile orientations agree.
//
// Variants returns the eight elements of the dihedral group in the order
//
//	identity, mirror, rot, mirror∘rot, rot², mirror∘rot², rot³, mirror∘rot³
//
// and callers keep the first k of them for a symmetry count of k.
package symmetry
