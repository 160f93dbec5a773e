package matrices

import "github.com/reusee/knot/fields"

func Add(a, b *Matrix) (*Matrix, error) {
	if err := a.sameShape(b); err != nil {
		return nil, err
	}
	ret := a.Clone()
	for i, v := range b.Data {
		ret.Data[i] = fields.Add(ret.Data[i], v)
	}
	return ret, nil
}

func Equal(a, b *Matrix) (bool, error) {
	if err := a.sameShape(b); err != nil {
		return false, err
	}
	for i, v := range a.Data {
		if b.Data[i] != v {
			return false, nil
		}
	}
	return true, nil
}
