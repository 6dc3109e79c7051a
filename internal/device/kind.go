// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import "slices"

// Kind is the type tag of a [Device] as used in the first field of a device
// argument.
type Kind string

const (
	KindBlock    Kind = "virtio-blk"
	KindEntropy  Kind = "virtio-rng"
	KindSerial   Kind = "virtio-serial"
	KindVsock    Kind = "virtio-vsock"
	KindNetwork  Kind = "virtio-net"
	KindSharedFS Kind = "virtio-fs"
)

// Kinds returns all known [Kind]s.
func Kinds() []Kind {
	return []Kind{
		KindBlock,
		KindEntropy,
		KindSerial,
		KindVsock,
		KindNetwork,
		KindSharedFS,
	}
}

func (k Kind) isKnown() bool {
	return slices.Contains(Kinds(), k)
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	return string(k)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It is case-sensitive.
func (k *Kind) UnmarshalText(text []byte) error {
	kind := Kind(text)

	if !kind.isKnown() {
		return &UnknownTypeError{Tag: string(text)}
	}

	*k = kind

	return nil
}
