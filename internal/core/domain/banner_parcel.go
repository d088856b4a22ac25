package domain

import (
	"errors"
	"fmt"

	"rewards-banner-service/pkg/parcel"
)

// ErrDecode is returned when a binary banner record cannot be read.
var ErrDecode = errors.New("banner: decode error")

// MarshalBinary writes the banner as a fixed-order parcel record:
// publisher key, title, name, description, background, logo, provider,
// status(int32). Links are not part of the record.
func (b *Banner) MarshalBinary() ([]byte, error) {
	fields := []string{
		b.publisherKey, b.title, b.name, b.description,
		b.background, b.logo, b.provider,
	}

	size := 4
	for _, f := range fields {
		size += 4 + len(f)
	}

	w := parcel.NewWriter(size)
	for _, f := range fields {
		if err := w.WriteString(f); err != nil {
			return nil, fmt.Errorf("encode banner: %w", err)
		}
	}
	w.WriteInt32(b.status.Raw())
	return w.Bytes(), nil
}

// UnmarshalBanner reads a record produced by MarshalBinary. The result
// never has links set. Any short, corrupt or over-long buffer yields an
// error wrapping ErrDecode.
func UnmarshalBanner(buf []byte) (*Banner, error) {
	r := parcel.NewReader(buf)
	b := &Banner{}

	for _, dst := range []*string{
		&b.publisherKey, &b.title, &b.name, &b.description,
		&b.background, &b.logo, &b.provider,
	} {
		s, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		*dst = s
	}

	status, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b.status = WalletStatus(status)

	if !r.Done() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, r.Remaining())
	}
	return b, nil
}
