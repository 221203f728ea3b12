package accessor

import "math"

// ReadEndianFloat32 reads a 4-byte IEEE-754 value via the same
// endian-aware path as ReadEndianUint32.
func (a *Accessor) ReadEndianFloat32(out *float32, e Endianness) error {
	var bits uint32
	if err := a.ReadEndianUint32(&bits, e); err != nil {
		return err
	}
	*out = math.Float32frombits(bits)
	return nil
}

// ReadEndianFloat64 reads an 8-byte IEEE-754 value via the same
// endian-aware path as ReadEndianUint64.
func (a *Accessor) ReadEndianFloat64(out *float64, e Endianness) error {
	var bits uint64
	if err := a.ReadEndianUint64(&bits, e); err != nil {
		return err
	}
	*out = math.Float64frombits(bits)
	return nil
}

// WriteEndianFloat32 writes a 4-byte IEEE-754 value.
func (a *Accessor) WriteEndianFloat32(v float32, e Endianness) error {
	return a.WriteEndianUint32(math.Float32bits(v), e)
}

// WriteEndianFloat64 writes an 8-byte IEEE-754 value.
func (a *Accessor) WriteEndianFloat64(v float64, e Endianness) error {
	return a.WriteEndianUint64(math.Float64bits(v), e)
}

func (a *Accessor) ReadFloat32(out *float32) error { return a.ReadEndianFloat32(out, a.endianness) }
func (a *Accessor) ReadFloat64(out *float64) error { return a.ReadEndianFloat64(out, a.endianness) }

func (a *Accessor) WriteFloat32(v float32) error { return a.WriteEndianFloat32(v, a.endianness) }
func (a *Accessor) WriteFloat64(v float64) error { return a.WriteEndianFloat64(v, a.endianness) }

// ReadEndianFloat32Array/64Array decode through the corresponding
// unsigned array codec and reinterpret each element's bits, the array
// analogue of ReadEndianFloat32/64.
func (a *Accessor) ReadEndianFloat32Array(out []float32, e Endianness) error {
	tmp := make([]uint32, len(out))
	if err := a.ReadEndianUint32Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = math.Float32frombits(v)
	}
	return nil
}

func (a *Accessor) ReadEndianFloat64Array(out []float64, e Endianness) error {
	tmp := make([]uint64, len(out))
	if err := a.ReadEndianUint64Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = math.Float64frombits(v)
	}
	return nil
}

// WriteEndianFloat32Array/64Array reinterpret each element's bits and
// delegate to the corresponding unsigned array codec.
func (a *Accessor) WriteEndianFloat32Array(in []float32, e Endianness) error {
	tmp := make([]uint32, len(in))
	for i, v := range in {
		tmp[i] = math.Float32bits(v)
	}
	return a.WriteEndianUint32Array(tmp, e)
}

func (a *Accessor) WriteEndianFloat64Array(in []float64, e Endianness) error {
	tmp := make([]uint64, len(in))
	for i, v := range in {
		tmp[i] = math.Float64bits(v)
	}
	return a.WriteEndianUint64Array(tmp, e)
}

func (a *Accessor) ReadFloat32Array(out []float32) error {
	return a.ReadEndianFloat32Array(out, a.endianness)
}
func (a *Accessor) ReadFloat64Array(out []float64) error {
	return a.ReadEndianFloat64Array(out, a.endianness)
}

func (a *Accessor) WriteFloat32Array(in []float32) error {
	return a.WriteEndianFloat32Array(in, a.endianness)
}
func (a *Accessor) WriteFloat64Array(in []float64) error {
	return a.WriteEndianFloat64Array(in, a.endianness)
}
