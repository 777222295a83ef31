package math

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVec3 reads a vector written as "x,y,z".
func ParseVec3(s string) (Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var v [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// ParseVec3s reads each argument with ParseVec3.
func ParseVec3s(args []string) ([]Vec3, error) {
	out := make([]Vec3, 0, len(args))
	for _, arg := range args {
		v, err := ParseVec3(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
