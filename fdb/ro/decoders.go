package ro

import (
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

var (
	headerDecoder        = cursor.Decoder[raw.Header]{Size: raw.HeaderSize, Load: raw.LoadHeader}
	tableHeaderDecoder   = cursor.Decoder[raw.TableHeader]{Size: raw.TableHeaderSize, Load: raw.LoadTableHeader}
	tableDefDecoder      = cursor.Decoder[raw.TableDef]{Size: raw.TableDefSize, Load: raw.LoadTableDef}
	columnHeaderDecoder  = cursor.Decoder[raw.ColumnHeader]{Size: raw.ColumnHeaderSize, Load: raw.LoadColumnHeader}
	tableDataDecoder     = cursor.Decoder[raw.TableData]{Size: raw.TableDataSize, Load: raw.LoadTableData}
	bucketHeaderDecoder  = cursor.Decoder[raw.BucketHeader]{Size: raw.BucketHeaderSize, Load: raw.LoadBucketHeader}
	rowHeaderConsDecoder = cursor.Decoder[raw.RowHeaderCons]{Size: raw.RowHeaderConsSize, Load: raw.LoadRowHeaderCons}
	rowHeaderDecoder     = cursor.Decoder[raw.RowHeader]{Size: raw.RowHeaderSize, Load: raw.LoadRowHeader}
	fieldDataDecoder     = cursor.Decoder[raw.FieldData]{Size: raw.FieldDataSize, Load: raw.LoadFieldData}
)
