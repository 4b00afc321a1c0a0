// Copyright 2021 Converter Systems LLC. All rights reserved.

package addrspace

import (
	"bytes"
	"io"

	"github.com/awcullen/uaspace/ua"
	"github.com/djherbis/buffer"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// An image is laid out as
//
//	magic "UASP" | version uint32 | node count uint32 | payload length int64 | payload | BLAKE2b-256(payload)
//
// All integers are little endian, and the payload is encoded in UA Binary.
const (
	imageMagic   = "UASP"
	imageVersion = uint32(1)
)

// ErrDigestMismatch is returned by ReadImage when the payload does not match its digest.
var ErrDigestMismatch = errors.New("image digest mismatch")

// WriteImage writes the compiled table to w.
func (as *AddressSpace) WriteImage(w io.Writer) error {
	payload := buffer.NewPartitionAt(bufferPool)
	defer payload.Reset()
	h, err := blake2b.New256(nil)
	if err != nil {
		return err
	}
	if err := as.encode(ua.NewBinaryEncoder(io.MultiWriter(payload, h))); err != nil {
		return errors.Wrap(err, "error encoding image")
	}

	if _, err := io.WriteString(w, imageMagic); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	enc := ua.NewBinaryEncoder(w)
	if err := enc.WriteUInt32(imageVersion); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	if err := enc.WriteUInt32(uint32(as.Len())); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	if err := enc.WriteInt64(payload.Len()); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	if _, err := io.Copy(w, payload); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	if _, err := w.Write(h.Sum(nil)); err != nil {
		return errors.Wrap(err, "error writing image")
	}
	return nil
}

// ReadImage reads a table written by WriteImage. The table is verified before it is returned.
func ReadImage(r io.Reader) (*AddressSpace, error) {
	magic := make([]byte, len(imageMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, errors.Wrap(err, "error reading image")
	}
	if string(magic) != imageMagic {
		return nil, errors.Errorf("not an image, magic %q", magic)
	}
	dec := ua.NewBinaryDecoder(r)
	var version, count uint32
	var size int64
	if err := dec.ReadUInt32(&version); err != nil {
		return nil, errors.Wrap(err, "error reading image")
	}
	if version != imageVersion {
		return nil, errors.Errorf("unsupported image version %d", version)
	}
	if err := dec.ReadUInt32(&count); err != nil {
		return nil, errors.Wrap(err, "error reading image")
	}
	if err := dec.ReadInt64(&size); err != nil {
		return nil, errors.Wrap(err, "error reading image")
	}
	if size < 0 {
		return nil, errors.Errorf("invalid image payload length %d", size)
	}

	payload := buffer.NewPartitionAt(bufferPool)
	defer payload.Reset()
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	if _, err := io.CopyN(io.MultiWriter(payload, h), r, size); err != nil {
		return nil, errors.Wrap(err, "error reading image payload")
	}
	digest := make([]byte, blake2b.Size256)
	if _, err := io.ReadFull(r, digest); err != nil {
		return nil, errors.Wrap(err, "error reading image digest")
	}
	if !bytes.Equal(digest, h.Sum(nil)) {
		return nil, ErrDigestMismatch
	}

	as, err := decode(ua.NewBinaryDecoderLimit(payload, payload.Len()))
	if err != nil {
		return nil, errors.Wrap(err, "error decoding image")
	}
	if as.Len() != int(count) {
		return nil, errors.Errorf("image holds %d nodes, header says %d", as.Len(), count)
	}
	if err := as.Verify(); err != nil {
		return nil, errors.Wrap(err, "invalid image")
	}
	return as, nil
}

func (as *AddressSpace) encode(enc *ua.BinaryEncoder) error {
	if err := enc.WriteInt32(int32(len(as.namespaceURIs))); err != nil {
		return err
	}
	for _, uri := range as.namespaceURIs {
		if err := enc.WriteString(uri); err != nil {
			return err
		}
	}

	if err := enc.WriteInt32(int32(as.Len())); err != nil {
		return err
	}
	for pos := 1; pos < len(as.nodes); pos++ {
		n := &as.nodes[pos]
		if err := enc.WriteInt32(int32(n.class)); err != nil {
			return err
		}
		if err := enc.WriteNodeID(n.id); err != nil {
			return err
		}
		if err := enc.WriteQualifiedName(n.browseName); err != nil {
			return err
		}
		for _, i := range []int{
			n.valueIndex,
			n.references.Begin, n.references.End,
			n.displayNames.Begin, n.displayNames.End,
			n.descriptions.Begin, n.descriptions.End,
		} {
			if err := enc.WriteInt32(int32(i)); err != nil {
				return err
			}
		}
	}

	if err := enc.WriteInt32(int32(as.NbValues())); err != nil {
		return err
	}
	for _, v := range as.values[1:] {
		if err := enc.WriteVariant(v.variant); err != nil {
			return err
		}
		if err := enc.WriteStatusCode(v.status); err != nil {
			return err
		}
		if err := enc.WriteByte(v.accessLevel); err != nil {
			return err
		}
	}

	if err := enc.WriteInt32(int32(as.NbReferencesTotal())); err != nil {
		return err
	}
	for _, r := range as.references[1:] {
		if err := enc.WriteNodeID(r.Type); err != nil {
			return err
		}
		if err := enc.WriteExpandedNodeID(r.Target); err != nil {
			return err
		}
		if err := enc.WriteBoolean(r.IsForward); err != nil {
			return err
		}
	}

	for _, table := range [][]ua.LocalizedText{as.displayNames, as.descriptions} {
		if err := enc.WriteInt32(int32(len(table) - 1)); err != nil {
			return err
		}
		for _, lt := range table[1:] {
			if err := enc.WriteLocalizedText(lt); err != nil {
				return err
			}
		}
	}
	return nil
}

// readLength reads an int32 count and rejects negative values.
func readLength(dec *ua.BinaryDecoder) (int, error) {
	var n int32
	if err := dec.ReadInt32(&n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ua.BadDecodingError
	}
	return int(n), nil
}

func decode(dec *ua.BinaryDecoder) (*AddressSpace, error) {
	nsCount, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	uris := []string{}
	for i := 0; i < nsCount; i++ {
		var uri string
		if err := dec.ReadString(&uri); err != nil {
			return nil, err
		}
		uris = append(uris, uri)
	}

	count, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	as := newAddressSpace(uris, 0)
	for pos := 1; pos <= count; pos++ {
		var n node
		var class int32
		if err := dec.ReadInt32(&class); err != nil {
			return nil, err
		}
		n.class = ua.NodeClass(class)
		if err := dec.ReadNodeID(&n.id); err != nil {
			return nil, err
		}
		if err := dec.ReadQualifiedName(&n.browseName); err != nil {
			return nil, err
		}
		var ints [7]int32
		for i := range ints {
			if err := dec.ReadInt32(&ints[i]); err != nil {
				return nil, err
			}
		}
		n.valueIndex = int(ints[0])
		n.references = Range{int(ints[1]), int(ints[2])}
		n.displayNames = Range{int(ints[3]), int(ints[4])}
		n.descriptions = Range{int(ints[5]), int(ints[6])}
		if _, exists := as.index[n.id]; exists {
			return nil, errors.Wrapf(ua.BadNodeIDExists, "node %s", n.id)
		}
		as.index[n.id] = pos
		as.counts[n.class]++
		as.nodes = append(as.nodes, n)
	}

	valueCount, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	for i := 0; i < valueCount; i++ {
		var v value
		if err := dec.ReadVariant(&v.variant); err != nil {
			return nil, err
		}
		if err := dec.ReadStatusCode(&v.status); err != nil {
			return nil, err
		}
		if err := dec.ReadByte(&v.accessLevel); err != nil {
			return nil, err
		}
		as.values = append(as.values, v)
	}

	refCount, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	for i := 0; i < refCount; i++ {
		var r Reference
		if err := dec.ReadNodeID(&r.Type); err != nil {
			return nil, err
		}
		if err := dec.ReadExpandedNodeID(&r.Target); err != nil {
			return nil, err
		}
		if err := dec.ReadBoolean(&r.IsForward); err != nil {
			return nil, err
		}
		as.references = append(as.references, r)
	}

	for _, table := range []*[]ua.LocalizedText{&as.displayNames, &as.descriptions} {
		n, err := readLength(dec)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			var lt ua.LocalizedText
			if err := dec.ReadLocalizedText(&lt); err != nil {
				return nil, err
			}
			*table = append(*table, lt)
		}
	}
	return as, nil
}
