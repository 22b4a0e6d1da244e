package domain

// FileType represents the allowed workbook types for upload.
type FileType string

const (
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLSM FileType = "xlsm"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLSM: "application/vnd.ms-excel.sheet.macroEnabled.12",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"xlsx": FileTypeXLSX,
	"xlsm": FileTypeXLSM,
}

// ContentTypeXLSX is the MIME type used for workbook downloads.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
