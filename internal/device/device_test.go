// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device_test

import (
	"context"
	"testing"

	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/device"
	"github.com/aibor/virtkrun/internal/krun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    device.Device
		expectedErr error
	}{
		{
			name:     "block",
			input:    "virtio-blk,path=/tmp/disk.img",
			expected: device.Block{Path: "/tmp/disk.img"},
		},
		{
			name:     "block unlabeled",
			input:    "virtio-blk,/tmp/disk.img",
			expected: device.Block{Path: "/tmp/disk.img"},
		},
		{
			name:        "block wrong label",
			input:       "virtio-blk,file=/tmp/disk.img",
			expectedErr: &cmdline.LabelError{},
		},
		{
			name:        "block too many fields",
			input:       "virtio-blk,path=/tmp/disk.img,ro",
			expectedErr: &cmdline.FieldCountError{},
		},
		{
			name:     "block empty path",
			input:    "virtio-blk,path=",
			expected: device.Block{},
		},
		{
			name:     "block without fields",
			input:    "virtio-blk",
			expected: device.Block{},
		},
		{
			name:     "entropy",
			input:    "virtio-rng",
			expected: device.Entropy{},
		},
		{
			name:        "entropy with fields",
			input:       "virtio-rng,foo",
			expectedErr: &cmdline.FieldCountError{},
		},
		{
			name:     "serial",
			input:    "virtio-serial,logFilePath=/tmp/console.log",
			expected: device.Serial{LogFilePath: "/tmp/console.log"},
		},
		{
			name:     "serial without fields",
			input:    "virtio-serial",
			expected: device.Serial{},
		},
		{
			name:  "vsock",
			input: "virtio-vsock,port=1024,socketURL=/tmp/v.sock,listen",
			expected: device.Vsock{
				Port:      1024,
				SocketURL: "/tmp/v.sock",
				Action:    device.VsockActionListen,
			},
		},
		{
			name:  "vsock action case insensitive",
			input: "virtio-vsock,port=4294967295,socketURL=/tmp/v.sock,LISTEN",
			expected: device.Vsock{
				Port:      4294967295,
				SocketURL: "/tmp/v.sock",
				Action:    device.VsockActionListen,
			},
		},
		{
			name:        "vsock port not a number",
			input:       "virtio-vsock,port=abc,socketURL=/tmp/v.sock,listen",
			expectedErr: device.ErrInvalidPort,
		},
		{
			name:        "vsock port overflow",
			input:       "virtio-vsock,port=4294967296,socketURL=/tmp/v.sock,listen",
			expectedErr: device.ErrInvalidPort,
		},
		{
			name:  "vsock port with plus sign",
			input: "virtio-vsock,port=+5,socketURL=/tmp/v.sock,listen",
			expected: device.Vsock{
				Port:      5,
				SocketURL: "/tmp/v.sock",
				Action:    device.VsockActionListen,
			},
		},
		{
			name:        "vsock port only plus sign",
			input:       "virtio-vsock,port=+,socketURL=/tmp/v.sock,listen",
			expectedErr: device.ErrInvalidPort,
		},
		{
			name:        "vsock port double plus sign",
			input:       "virtio-vsock,port=++5,socketURL=/tmp/v.sock,listen",
			expectedErr: device.ErrInvalidPort,
		},
		{
			name:        "vsock negative port",
			input:       "virtio-vsock,port=-1,socketURL=/tmp/v.sock,listen",
			expectedErr: device.ErrInvalidPort,
		},
		{
			name:        "vsock invalid action",
			input:       "virtio-vsock,port=1024,socketURL=/tmp/v.sock,connect",
			expectedErr: device.ErrInvalidVsockAction,
		},
		{
			name:        "vsock missing action",
			input:       "virtio-vsock,port=1024,socketURL=/tmp/v.sock",
			expectedErr: &cmdline.FieldCountError{},
		},
		{
			name:        "vsock malformed field",
			input:       "virtio-vsock,port=1=2,socketURL=/tmp/v.sock,listen",
			expectedErr: cmdline.ErrMalformedField,
		},
		{
			name:  "network",
			input: "virtio-net,unixSocketPath=/tmp/net.sock,mac=52:54:00:12:34:56",
			expected: device.Network{
				UnixSocketPath: "/tmp/net.sock",
				MACAddress:     "52:54:00:12:34:56",
			},
		},
		{
			name:  "network mac not validated",
			input: "virtio-net,unixSocketPath=/tmp/net.sock,mac=whatever",
			expected: device.Network{
				UnixSocketPath: "/tmp/net.sock",
				MACAddress:     "whatever",
			},
		},
		{
			name:        "network missing mac",
			input:       "virtio-net,unixSocketPath=/tmp/net.sock",
			expectedErr: &cmdline.FieldCountError{},
		},
		{
			name:  "shared fs",
			input: "virtio-fs,sharedDir=/a,mountTag=/b",
			expected: device.SharedFS{
				SharedDir: "/a",
				MountTag:  "/b",
			},
		},
		{
			name:  "shared fs empty dir",
			input: "virtio-fs,sharedDir=,mountTag=t",
			expected: device.SharedFS{
				MountTag: "t",
			},
		},
		{
			name:        "shared fs insufficient arguments",
			input:       "virtio-fs,sharedDir=/a",
			expectedErr: device.ErrInsufficientArguments,
		},
		{
			name:        "shared fs no arguments",
			input:       "virtio-fs",
			expectedErr: device.ErrInsufficientArguments,
		},
		{
			name:        "unknown kind",
			input:       "virtio-xyz,foo",
			expectedErr: device.ErrUnknownDeviceType,
		},
		{
			name:        "kind is case sensitive",
			input:       "VIRTIO-BLK,path=/tmp/disk.img",
			expectedErr: &device.UnknownTypeError{},
		},
		{
			name:        "empty",
			input:       "",
			expectedErr: device.ErrEmptyDeviceSpec,
		},
		{
			name:        "empty kind",
			input:       ",path=/tmp/disk.img",
			expectedErr: device.ErrEmptyDeviceSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := device.Resolve(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

// Extra fields of virtio-fs are silently ignored. This is kept lenient on
// purpose, so arguments for future options do not break.
func TestResolve_SharedFSIgnoresExtraFields(t *testing.T) {
	actual, err := device.Resolve("virtio-fs,sharedDir=/a,mountTag=/b,extra,x=y")
	require.NoError(t, err)

	assert.Equal(t, device.SharedFS{SharedDir: "/a", MountTag: "/b"}, actual)
}

func TestResolve_PortFieldError(t *testing.T) {
	_, err := device.Resolve("virtio-vsock,port=abc,socketURL=/tmp/v.sock,listen")

	var fieldErr *cmdline.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "port", fieldErr.Field)
}

func TestResolve_UnknownTypeNamesTag(t *testing.T) {
	_, err := device.Resolve("virtio-xyz,foo")

	var typeErr *device.UnknownTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "virtio-xyz", typeErr.Tag)
	assert.EqualError(t, err,
		"invalid virtio device label specified: virtio-xyz")
}

func TestResolve_KindRoundTrip(t *testing.T) {
	inputs := map[device.Kind]string{
		device.KindBlock:    "virtio-blk,path=/disk.img",
		device.KindEntropy:  "virtio-rng",
		device.KindSerial:   "virtio-serial,logFilePath=/log",
		device.KindVsock:    "virtio-vsock,port=1,socketURL=/sock,listen",
		device.KindNetwork:  "virtio-net,unixSocketPath=/net,mac=m",
		device.KindSharedFS: "virtio-fs,sharedDir=/a,mountTag=b",
	}

	require.Len(t, inputs, len(device.Kinds()))

	for kind, input := range inputs {
		t.Run(string(kind), func(t *testing.T) {
			dev, err := device.Resolve(input)
			require.NoError(t, err)

			assert.Equal(t, kind, dev.Kind())
			assert.Equal(t, input, dev.String())

			again, err := device.Resolve(dev.String())
			require.NoError(t, err)
			assert.Equal(t, dev, again)
		})
	}
}

func TestResolveAll(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		devices, err := device.ResolveAll(context.Background(), []string{
			"virtio-fs,sharedDir=/a,mountTag=b",
			"virtio-blk,path=/disk.img",
			"virtio-rng",
			"virtio-vsock,port=2,socketURL=/sock,listen",
		})
		require.NoError(t, err)

		assert.Equal(t, []device.Device{
			device.SharedFS{SharedDir: "/a", MountTag: "b"},
			device.Block{Path: "/disk.img"},
			device.Entropy{},
			device.Vsock{
				Port:      2,
				SocketURL: "/sock",
				Action:    device.VsockActionListen,
			},
		}, devices)
	})

	t.Run("empty", func(t *testing.T) {
		devices, err := device.ResolveAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, devices)
	})

	t.Run("error", func(t *testing.T) {
		_, err := device.ResolveAll(context.Background(), []string{
			"virtio-blk,path=/disk.img",
			"virtio-xyz",
		})
		require.ErrorIs(t, err, device.ErrUnknownDeviceType)
		assert.ErrorContains(t, err, `device "virtio-xyz"`)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := device.ResolveAll(ctx, []string{"virtio-rng"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBind(t *testing.T) {
	tests := []struct {
		name          string
		device        device.Device
		expectedCalls []krun.Call
		expectedErr   error
	}{
		{
			name:   "block",
			device: device.Block{Path: "/tmp/disk.img"},
			expectedCalls: []krun.Call{
				{Name: "set_root_disk", ID: 9, Path: "/tmp/disk.img"},
			},
		},
		{
			name: "vsock",
			device: device.Vsock{
				Port:      1024,
				SocketURL: "/tmp/v.sock",
				Action:    device.VsockActionListen,
			},
			expectedCalls: []krun.Call{
				{Name: "add_vsock_port", ID: 9, Port: 1024, Path: "/tmp/v.sock"},
			},
		},
		{
			name:   "shared fs",
			device: device.SharedFS{SharedDir: "/a", MountTag: "/b"},
			expectedCalls: []krun.Call{
				{Name: "add_virtiofs", ID: 9, MountTag: "/b", SharedDir: "/a"},
			},
		},
		{
			name:        "entropy",
			device:      device.Entropy{},
			expectedErr: device.ErrNotImplemented,
		},
		{
			name:        "serial",
			device:      device.Serial{LogFilePath: "/log"},
			expectedErr: device.ErrNotImplemented,
		},
		{
			name:        "network",
			device:      device.Network{UnixSocketPath: "/net", MACAddress: "m"},
			expectedErr: &device.NotImplementedError{},
		},
		{
			name:        "path with NUL",
			device:      device.Block{Path: "/tmp/\x00"},
			expectedErr: &krun.PathEncodingError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &krun.Recorder{}

			err := tt.device.Bind(krun.NewContext(rec, 9))
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expectedCalls, rec.Calls)
		})
	}
}

func TestBind_BoundaryFailure(t *testing.T) {
	rec := &krun.Recorder{
		Codes: map[string]int32{"set_root_disk": -1},
	}

	err := device.Block{Path: "/tmp/disk.img"}.Bind(krun.NewContext(rec, 1))

	var boundaryErr *krun.BoundaryError
	require.ErrorAs(t, err, &boundaryErr)
	assert.ErrorIs(t, err, krun.ErrSetRootDiskFailed)
	assert.Len(t, rec.Calls, 1)
}

func TestBindAll(t *testing.T) {
	devices := []device.Device{
		device.Block{Path: "/disk.img"},
		device.SharedFS{SharedDir: "/a", MountTag: "b"},
		device.Entropy{},
		device.Vsock{Port: 1, SocketURL: "/sock"},
	}

	rec := &krun.Recorder{}

	err := device.BindAll(krun.NewContext(rec, 1), devices)
	require.ErrorIs(t, err, device.ErrNotImplemented)
	assert.ErrorContains(t, err, "bind virtio-rng")

	assert.Len(t, rec.Calls, 2, "must stop at first error")
}

func TestBindAll_StopsOnBoundaryError(t *testing.T) {
	rec := &krun.Recorder{
		Codes: map[string]int32{"set_root_disk": -1},
	}

	err := device.BindAll(krun.NewContext(rec, 1), []device.Device{
		device.Block{Path: "/disk.img"},
		device.SharedFS{SharedDir: "/a", MountTag: "b"},
	})
	require.ErrorIs(t, err, krun.ErrSetRootDiskFailed)

	assert.Len(t, rec.Calls, 1)
}
