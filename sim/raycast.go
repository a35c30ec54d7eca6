package sim

import (
	"math"

	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
)

// Raycast implements host.World. It intersects the floor plane y=0 and the
// arena boxes, ignoring balls. Hits beyond MaxRayDistance are misses.
func (w *World) Raycast(r host.Ray) (mgl64.Vec3, bool) {
	if r.Direction.Len() < 1e-12 {
		return mgl64.Vec3{}, false
	}
	dir := r.Direction.Normalize()

	best := w.conf.MaxRayDistance
	hit := false

	if dir.Y() < 0 {
		if t := -r.Origin.Y() / dir.Y(); t >= 0 && t <= best {
			best, hit = t, true
		}
	}

	for _, b := range w.candidates(r.Origin, dir, best) {
		lo, hi := b.Bounds()
		if t0, _, ok := slab(r.Origin, dir, lo, hi, 0, 1, 2); ok && t0 <= best {
			best, hit = t0, true
		}
	}

	if !hit {
		return mgl64.Vec3{}, false
	}
	return r.Origin.Add(dir.Mul(best)), true
}

// candidates marches the resolv probe along the ray's XZ footprint inside the
// arena and collects every box sharing a cell with it.
func (w *World) candidates(origin, dir mgl64.Vec3, maxDist float64) []*Box {
	arenaLo := mgl64.Vec3{0, 0, 0}
	arenaHi := mgl64.Vec3{w.width, 0, w.depth}
	t0, t1, ok := slab(origin, dir, arenaLo, arenaHi, 0, 2)
	if !ok {
		return nil
	}
	t1 = math.Min(t1, maxDist)

	step := w.conf.RaySampleStep
	horiz := math.Hypot(dir.X(), dir.Z())
	dt := math.Inf(1)
	if horiz > 1e-12 {
		dt = step / horiz
	}

	seen := map[*Box]struct{}{}
	var out []*Box
	for t := t0; ; t += dt {
		t = math.Min(t, t1)
		p := origin.Add(dir.Mul(t))
		w.probe.X = (p.X() - step/2) * resolvScale
		w.probe.Y = (p.Z() - step/2) * resolvScale
		w.probe.Update()

		if check := w.probe.Check(0, 0, tags.ResolvSolid, tags.ResolvTarget); check != nil {
			for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvTarget) {
				b, ok := o.Data.(*Box)
				if !ok {
					continue
				}
				if _, dup := seen[b]; !dup {
					seen[b] = struct{}{}
					out = append(out, b)
				}
			}
		}
		if t >= t1 {
			break
		}
	}
	return out
}

// slab intersects the ray with the box [lo, hi] over the given axes and
// returns the entry and exit parameters, clipped to t >= 0.
func slab(o, d, lo, hi mgl64.Vec3, axes ...int) (float64, float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	for _, i := range axes {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d[i]
		ta := (lo[i] - o[i]) * inv
		tb := (hi[i] - o[i]) * inv
		if ta > tb {
			ta, tb = tb, ta
		}
		tmin = math.Max(tmin, ta)
		tmax = math.Min(tmax, tb)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}
