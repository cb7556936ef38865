package orderkey

// incrementInt returns the next integer part after x, propagating a carry from
// the least significant digit leftward. A full carry-out rolls the head symbol
// forward, which changes the length class: 'Z' rolls into the positive range
// at IntegerZero, and 'z' has nowhere to go, reported as ErrOverflow.
func incrementInt(x string) (string, error) {
	if err := validateInt(x); err != nil {
		return "", err
	}
	digs := []byte(x)
	head := digs[0]
	carry := true
	for i := len(digs) - 1; carry && i >= 1; i-- {
		d := digitIndex(digs[i]) + 1
		if d == len(digits) {
			digs[i] = '0'
		} else {
			digs[i] = digits[d]
			carry = false
		}
	}
	if !carry {
		return string(digs), nil
	}
	switch head {
	case 'Z':
		return IntegerZero, nil
	case 'z':
		return "", ErrOverflow
	}
	// Body digits are all zero after the carry-out. Lowercase classes grow by
	// one digit going up; uppercase classes shrink.
	if h := head + 1; h > 'a' {
		return string(h) + string(digs[1:]) + "0", nil
	} else {
		return string(h) + string(digs[2:]), nil
	}
}

// decrementInt is the mirror of incrementInt: borrow propagation, with a full
// borrow-out rolling the head symbol back. 'a' rolls into the mirrored range
// at "Zz", and 'A' has no smaller head, reported as ErrUnderflow.
func decrementInt(x string) (string, error) {
	if err := validateInt(x); err != nil {
		return "", err
	}
	digs := []byte(x)
	head := digs[0]
	borrow := true
	for i := len(digs) - 1; borrow && i >= 1; i-- {
		d := digitIndex(digs[i]) - 1
		if d < 0 {
			digs[i] = digits[len(digits)-1]
		} else {
			digs[i] = digits[d]
			borrow = false
		}
	}
	if !borrow {
		return string(digs), nil
	}
	switch head {
	case 'a':
		return "Zz", nil
	case 'A':
		return "", ErrUnderflow
	}
	// Body digits are all at the maximum after the borrow-out. Uppercase
	// classes grow by one digit going down; lowercase classes shrink.
	if h := head - 1; h < 'Z' {
		return string(h) + string(digs[1:]) + "z", nil
	} else {
		return string(h) + string(digs[2:]), nil
	}
}
