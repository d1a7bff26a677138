// Package loader decodes register description files into a resolved
// design.Design.
//
// A description is a YAML (or JSON) document with three top-level keys:
//
//	schema:
//	  name: register-description
//	  version: "1"
//	root:
//	  display_name: Example
//	  version: "1.0"
//	  data_width: 32
//	  children: [blkA]
//	elements:
//	  blkA:
//	    id: blkA
//	    name: blkA
//	    type: blk
//	    offset: 0x100
//	    children: [blkA.regA0]
//	  blkA.regA0:
//	    id: blkA.regA0
//	    name: regA0
//	    type: reg
//	    offset: 0x4
//	    fields:
//	      - {name: mode, lsb: 0, nbits: 32, access: rw, reset: 0x0}
//
// Elements of type "include" name another description by url. Load fetches
// it through a Fetcher and grafts its root children under a block at the
// include's id, prefixing every included id.
package loader
