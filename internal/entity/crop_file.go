package entity

import (
	"time"

	"github.com/faceset/faceset/internal/crop"
)

// CropFile represents a saved face crop, with the normalized detection
// area it was extracted from.
type CropFile struct {
	ID         uint      `gorm:"primary_key" json:"-"`
	SessionUID string    `gorm:"type:VARBINARY(42);index;" json:"SessionUID"`
	CropIndex  int       `json:"Index"`
	FileName   string    `gorm:"type:VARCHAR(755);" json:"FileName"`
	FileHash   string    `gorm:"type:VARBINARY(128);index;" json:"Hash"`
	X          float32   `gorm:"type:FLOAT;" json:"X"`
	Y          float32   `gorm:"type:FLOAT;" json:"Y"`
	W          float32   `gorm:"type:FLOAT;" json:"W"`
	H          float32   `gorm:"type:FLOAT;" json:"H"`
	Width      int       `json:"Width"`
	Height     int       `json:"Height"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

// TableName returns the entity database table name.
func (CropFile) TableName() string {
	return "crop_files"
}

// NewCropFile creates a new crop file entity from a produced crop.
func NewCropFile(sessionUID string, c crop.Crop, fileName, fileHash string) *CropFile {
	return &CropFile{
		SessionUID: sessionUID,
		CropIndex:  c.Index,
		FileName:   fileName,
		FileHash:   fileHash,
		X:          c.Area.X,
		Y:          c.Area.Y,
		W:          c.Area.W,
		H:          c.Area.H,
		Width:      c.Width(),
		Height:     c.Height(),
	}
}

// Create inserts the crop file into the database.
func (m *CropFile) Create() error {
	return Db().Create(m).Error
}

// SessionCropFiles returns the crop files of a session in sampling order.
func SessionCropFiles(sessionUID string) (result []CropFile, err error) {
	err = Db().Where("session_uid = ?", sessionUID).Order("crop_index").Find(&result).Error

	return result, err
}

// DeleteCropFiles removes all crop file rows.
func DeleteCropFiles() error {
	return Db().Delete(&CropFile{}).Error
}

// DeleteSessions removes all session rows.
func DeleteSessions() error {
	return Db().Delete(&Session{}).Error
}
