// Copyright 2016 Gary Burd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msgpack

import "fmt"

// FrameKind identifies which of the three msgpack-RPC message shapes a
// Frame carries.
type FrameKind int

// The three msgpack-RPC frame kinds, tagged by the integer Neovim places in
// the first array element.
const (
	FrameRequest FrameKind = iota
	FrameResponse
	FrameNotification
)

// Frame is a single msgpack-RPC message: a request, a response or a
// notification. Exactly the fields relevant to Kind are meaningful.
type Frame struct {
	Kind FrameKind

	// ID is used by FrameRequest and FrameResponse. The peer must never
	// invent a Response.ID; it always echoes one previously issued by this
	// side as a Request.ID.
	ID uint64

	// Method is used by FrameRequest and FrameNotification.
	Method string

	// Params is used by FrameRequest and FrameNotification.
	Params []Value

	// Error and Result are used by FrameResponse. Exactly one is non-nil.
	Error  Value
	Result Value
}

// Request builds a request Frame.
func Request(id uint64, method string, params []Value) Frame {
	return Frame{Kind: FrameRequest, ID: id, Method: method, Params: params}
}

// Response builds a response Frame. Exactly one of err/result should be
// non-nil; pass the zero Value for the other.
func Response(id uint64, err, result Value) Frame {
	return Frame{Kind: FrameResponse, ID: id, Error: err, Result: result}
}

// Notification builds a notification Frame.
func Notification(method string, params []Value) Frame {
	return Frame{Kind: FrameNotification, Method: method, Params: params}
}

// DecodeError reports a frame that could not be classified or whose fields
// did not match the expected shape.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return "msgpack: decode error: " + e.Reason }

// EncodeFrame writes f to enc as a msgpack-RPC frame and flushes the
// underlying writer so the peer observes it without buffering delay.
func EncodeFrame(enc *Encoder, f Frame) error {
	switch f.Kind {
	case FrameRequest:
		if err := enc.PackArrayLen(4); err != nil {
			return err
		}
		if err := enc.PackInt(0); err != nil {
			return err
		}
		if err := enc.PackUint(f.ID); err != nil {
			return err
		}
		if err := enc.PackString(f.Method); err != nil {
			return err
		}
		if err := Array(f.Params).Encode(enc); err != nil {
			return err
		}
	case FrameResponse:
		if err := enc.PackArrayLen(4); err != nil {
			return err
		}
		if err := enc.PackInt(1); err != nil {
			return err
		}
		if err := enc.PackUint(f.ID); err != nil {
			return err
		}
		if err := f.Error.Encode(enc); err != nil {
			return err
		}
		if err := f.Result.Encode(enc); err != nil {
			return err
		}
	case FrameNotification:
		if err := enc.PackArrayLen(3); err != nil {
			return err
		}
		if err := enc.PackInt(2); err != nil {
			return err
		}
		if err := enc.PackString(f.Method); err != nil {
			return err
		}
		if err := Array(f.Params).Encode(enc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("msgpack: unknown frame kind %d", f.Kind)
	}
	return enc.Flush()
}

// DecodeFrame reads one complete Frame from dec.
func DecodeFrame(dec *Decoder) (Frame, error) {
	v, err := DecodeValue(dec)
	if err != nil {
		return Frame{}, err
	}
	if v.Kind() != KindArray {
		return Frame{}, &DecodeError{Reason: "not a frame"}
	}
	elems := v.AsArray()
	if len(elems) < 3 {
		return Frame{}, &DecodeError{Reason: "not a frame"}
	}
	if elems[0].Kind() != KindInt && elems[0].Kind() != KindUint {
		return Frame{}, &DecodeError{Reason: "not a frame"}
	}

	switch elems[0].AsInt() {
	case 0:
		if len(elems) != 4 {
			return Frame{}, &DecodeError{Reason: "not a frame"}
		}
		if elems[1].Kind() != KindInt && elems[1].Kind() != KindUint {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		if elems[2].Kind() != KindString {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		if elems[3].Kind() != KindArray {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		return Request(elems[1].AsUint(), elems[2].AsString(), elems[3].AsArray()), nil
	case 1:
		if len(elems) != 4 {
			return Frame{}, &DecodeError{Reason: "not a frame"}
		}
		if elems[1].Kind() != KindInt && elems[1].Kind() != KindUint {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		return Response(elems[1].AsUint(), elems[2], elems[3]), nil
	case 2:
		if len(elems) != 3 {
			return Frame{}, &DecodeError{Reason: "not a frame"}
		}
		if elems[1].Kind() != KindString {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		if elems[2].Kind() != KindArray {
			return Frame{}, &DecodeError{Reason: "wrong field type"}
		}
		return Notification(elems[1].AsString(), elems[2].AsArray()), nil
	default:
		return Frame{}, &DecodeError{Reason: "not a frame"}
	}
}
