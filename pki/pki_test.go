package pki_test

import (
	"bytes"
	"testing"

	"github.com/LUDevNet/assembly-fdb/pki"
)

// buildTree arranges crcs into a simple BST by repeated insertion, for
// test purposes only (archives built by a real writer would balance or
// otherwise construct this tree differently).
func buildTree(crcs []uint32) ([]pki.TreeNode[int], int32) {
	nodes := make([]pki.TreeNode[int], 0, len(crcs))
	var root int32 = -1
	for i, crc := range crcs {
		idx := int32(len(nodes))
		nodes = append(nodes, pki.TreeNode[int]{CRC: crc, Left: -1, Right: -1, Data: i})
		if root == -1 {
			root = idx
			continue
		}
		cur := root
		for {
			if crc < nodes[cur].CRC {
				if nodes[cur].Left == -1 {
					nodes[cur].Left = idx
					break
				}
				cur = nodes[cur].Left
			} else {
				if nodes[cur].Right == -1 {
					nodes[cur].Right = idx
					break
				}
				cur = nodes[cur].Right
			}
		}
	}
	return nodes, root
}

func TestLookupFindsInsertedKeys(t *testing.T) {
	crcs := []uint32{50, 20, 80, 10, 30, 70, 90}
	nodes, root := buildTree(crcs)
	for i, crc := range crcs {
		got, ok := pki.Lookup(nodes, root, crc)
		if !ok || got != i {
			t.Fatalf("Lookup(%d) = %d, %v; want %d, true", crc, got, ok, i)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	nodes, root := buildTree([]uint32{50, 20, 80})
	_, ok := pki.Lookup(nodes, root, 999)
	if ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestPathCRCNormalizesCaseAndSlashes(t *testing.T) {
	a := pki.PathCRC("res/ChArAcTeR.kfm")
	b := pki.PathCRC(`RES\character.KFM`)
	if a != b {
		t.Fatalf("PathCRC not case/slash normalized: %d != %d", a, b)
	}
}

func TestIndexResolve(t *testing.T) {
	crc := pki.PathCRC("res/foo.nif")
	nodes := []pki.TreeNode[pki.FileRef]{
		{CRC: crc, Left: -1, Right: -1, Data: pki.FileRef{PackFile: 2, Compressed: true}},
	}
	idx := pki.Index{
		Archives: []pki.PackFileRef{{Path: "a.pk"}, {Path: "b.pk"}, {Path: "c.pk"}},
		Nodes:    nodes,
		Root:     0,
	}
	ref, ok := idx.Resolve("res/foo.nif")
	if !ok {
		t.Fatal("expected Resolve hit")
	}
	path, ok := idx.ArchivePath(ref)
	if !ok || path != "c.pk" {
		t.Fatalf("ArchivePath = %q, %v; want c.pk, true", path, ok)
	}
}

func TestArchiveReadBlob(t *testing.T) {
	payload := []byte("hello, pack file")
	backing := bytes.NewReader(append(make([]byte, 16), payload...))
	entry := pki.PKEntry{OrigFileSize: uint32(len(payload)), FileDataAddr: 16}
	nodes := []pki.TreeNode[pki.PKEntry]{{CRC: 1, Left: -1, Right: -1, Data: entry}}
	arc := pki.NewArchive(pki.PKHeader{}, nodes, 0, backing)

	e, ok := arc.Lookup(1)
	if !ok {
		t.Fatal("expected lookup hit")
	}
	got, err := arc.ReadBlob(e)
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadBlob = %q, want %q", got, payload)
	}
}
