package postgres

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// Row types mirror the relational schema. They never leave this package:
// every repository maps rows to plain domain records at the boundary.

type adminUserRow struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20"`
	Role         string `gorm:"size:50;default:admin"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (adminUserRow) TableName() string { return "admin_users" }

type propertyRow struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	Title            string `gorm:"size:255;not null"`
	Slug             string `gorm:"size:255;uniqueIndex;not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"size:500"`
	Price            float64 `gorm:"not null"`
	PricePerSqFt     float64
	Area             string `gorm:"size:100;not null"`
	AreaInSqFt       int
	Location         string `gorm:"size:255;not null;index"`
	FullAddress      string `gorm:"type:text"`
	GoogleMapsLink   string `gorm:"size:500"`
	Type             string `gorm:"size:20;not null;index"`
	Status           string `gorm:"size:20;default:available;index"`
	Featured         bool   `gorm:"default:false"`
	Images           datatypes.JSON
	Amenities        datatypes.JSON
	Highlights       datatypes.JSON
	LegalInfo        datatypes.JSON
	NearbyPlaces     datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (propertyRow) TableName() string { return "properties" }

type enquiryRow struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Type          string `gorm:"size:20;not null;index"`
	Name          string `gorm:"size:255;not null"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:20;not null"`
	Message       string `gorm:"type:text"`
	PreferredTime string `gorm:"size:100"`
	PropertyID    *string `gorm:"type:uuid;index"`
	Status        string  `gorm:"size:20;default:pending;index"`
	Notes         string  `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	// Declared only so AutoMigrate emits the FK with SET NULL semantics.
	Property *propertyRow `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
}

func (enquiryRow) TableName() string { return "enquiries" }

type settingRow struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (settingRow) TableName() string { return "settings" }

type transactionRow struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	Type            string  `gorm:"size:10;not null;index"`
	Category        string  `gorm:"size:50;not null;index"`
	Amount          float64 `gorm:"not null"`
	Description     string  `gorm:"type:text"`
	PaymentMethod   string  `gorm:"size:20"`
	ReferenceNumber string  `gorm:"size:100"`
	PropertyID      *string `gorm:"type:uuid;index"`
	CustomerName    string  `gorm:"size:255"`
	CustomerPhone   string  `gorm:"size:20"`
	CustomerEmail   string  `gorm:"size:255"`
	TransactionDate time.Time `gorm:"not null;index"`
	Notes           string    `gorm:"type:text"`
	CreatedBy       string    `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Property *propertyRow  `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
	Creator  *adminUserRow `gorm:"foreignKey:CreatedBy"`
}

func (transactionRow) TableName() string { return "transactions" }

type receiptRow struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	ReceiptNumber   string  `gorm:"size:50;uniqueIndex;not null"`
	TransactionID   *string `gorm:"type:uuid"`
	CustomerName    string  `gorm:"size:255;not null"`
	CustomerPhone   string  `gorm:"size:20"`
	CustomerEmail   string  `gorm:"size:255"`
	CustomerAddress string  `gorm:"type:text"`
	Amount          float64 `gorm:"not null"`
	AmountInWords   string  `gorm:"size:500;not null"`
	Description     string  `gorm:"type:text;not null"`
	PaymentMethod   string  `gorm:"size:20"`
	PropertyDetails string  `gorm:"type:text"`
	IssueDate       time.Time `gorm:"not null;index"`
	Notes           string    `gorm:"type:text"`
	CreatedBy       string    `gorm:"type:uuid"`
	CreatedAt       time.Time

	Creator *adminUserRow `gorm:"foreignKey:CreatedBy"`
}

func (receiptRow) TableName() string { return "receipts" }

// --- row <-> domain mapping ---

// jsonOrDefault returns the stored document, or def for columns that were
// never written, so API responses always carry "[]"/"{}" instead of null.
func jsonOrDefault(v datatypes.JSON, def string) json.RawMessage {
	if len(v) == 0 {
		return json.RawMessage(def)
	}
	return json.RawMessage(v)
}

func (r *adminUserRow) toDomain() *domain.AdminUser {
	return &domain.AdminUser{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Phone:        r.Phone,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func propertyRowFrom(p *domain.Property) *propertyRow {
	return &propertyRow{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		PricePerSqFt:     p.PricePerSqFt,
		Area:             p.Area,
		AreaInSqFt:       p.AreaInSqFt,
		Location:         p.Location,
		FullAddress:      p.FullAddress,
		GoogleMapsLink:   p.GoogleMapsLink,
		Type:             p.Type,
		Status:           p.Status,
		Featured:         p.Featured,
		Images:           datatypes.JSON(p.Images),
		Amenities:        datatypes.JSON(p.Amenities),
		Highlights:       datatypes.JSON(p.Highlights),
		LegalInfo:        datatypes.JSON(p.LegalInfo),
		NearbyPlaces:     datatypes.JSON(p.NearbyPlaces),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *propertyRow) toDomain() domain.Property {
	return domain.Property{
		ID:               r.ID,
		Title:            r.Title,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		PricePerSqFt:     r.PricePerSqFt,
		Area:             r.Area,
		AreaInSqFt:       r.AreaInSqFt,
		Location:         r.Location,
		FullAddress:      r.FullAddress,
		GoogleMapsLink:   r.GoogleMapsLink,
		Type:             r.Type,
		Status:           r.Status,
		Featured:         r.Featured,
		Images:           jsonOrDefault(r.Images, "[]"),
		Amenities:        jsonOrDefault(r.Amenities, "[]"),
		Highlights:       jsonOrDefault(r.Highlights, "[]"),
		LegalInfo:        jsonOrDefault(r.LegalInfo, "{}"),
		NearbyPlaces:     jsonOrDefault(r.NearbyPlaces, "[]"),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func enquiryRowFrom(e *domain.Enquiry) *enquiryRow {
	return &enquiryRow{
		ID:            e.ID,
		Type:          e.Type,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Message:       e.Message,
		PreferredTime: e.PreferredTime,
		PropertyID:    e.PropertyID,
		Status:        e.Status,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *enquiryRow) toDomain() domain.Enquiry {
	return domain.Enquiry{
		ID:            r.ID,
		Type:          r.Type,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Message:       r.Message,
		PreferredTime: r.PreferredTime,
		PropertyID:    r.PropertyID,
		Status:        r.Status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func transactionRowFrom(t *domain.Transaction) *transactionRow {
	return &transactionRow{
		ID:              t.ID,
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
		Description:     t.Description,
		PaymentMethod:   t.PaymentMethod,
		ReferenceNumber: t.ReferenceNumber,
		PropertyID:      t.PropertyID,
		CustomerName:    t.CustomerName,
		CustomerPhone:   t.CustomerPhone,
		CustomerEmail:   t.CustomerEmail,
		TransactionDate: t.TransactionDate,
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *transactionRow) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:              r.ID,
		Type:            r.Type,
		Category:        r.Category,
		Amount:          r.Amount,
		Description:     r.Description,
		PaymentMethod:   r.PaymentMethod,
		ReferenceNumber: r.ReferenceNumber,
		PropertyID:      r.PropertyID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		TransactionDate: r.TransactionDate,
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func receiptRowFrom(rc *domain.Receipt) *receiptRow {
	return &receiptRow{
		ID:              rc.ID,
		ReceiptNumber:   rc.ReceiptNumber,
		TransactionID:   rc.TransactionID,
		CustomerName:    rc.CustomerName,
		CustomerPhone:   rc.CustomerPhone,
		CustomerEmail:   rc.CustomerEmail,
		CustomerAddress: rc.CustomerAddress,
		Amount:          rc.Amount,
		AmountInWords:   rc.AmountInWords,
		Description:     rc.Description,
		PaymentMethod:   rc.PaymentMethod,
		PropertyDetails: rc.PropertyDetails,
		IssueDate:       rc.IssueDate,
		Notes:           rc.Notes,
		CreatedBy:       rc.CreatedBy,
		CreatedAt:       rc.CreatedAt,
	}
}

func (r *receiptRow) toDomain() domain.Receipt {
	return domain.Receipt{
		ID:              r.ID,
		ReceiptNumber:   r.ReceiptNumber,
		TransactionID:   r.TransactionID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Amount:          r.Amount,
		AmountInWords:   r.AmountInWords,
		Description:     r.Description,
		PaymentMethod:   r.PaymentMethod,
		PropertyDetails: r.PropertyDetails,
		IssueDate:       r.IssueDate,
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
	}
}
