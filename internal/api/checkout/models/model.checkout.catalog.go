package models

// Các record catalog mà engine resolve tiêu thụ. Id là string để engine
// không phụ thuộc kiểu khóa của storage layer (ObjectID hex với MongoDB).

// CountryRecord là một quốc gia trong catalog.
type CountryRecord struct {
	ID   string
	Code string
	Name string
}

// PartyRecord là một party (cửa hàng/khách sỉ).
// DistributorID và ZoneID có thể rỗng — dữ liệu nguồn không đáng tin cậy.
type PartyRecord struct {
	ID            string
	Name          string
	Phone         string
	CountryID     string
	DistributorID string
	ZoneID        string
}

// DistributorRecord là một distributor.
type DistributorRecord struct {
	ID        string
	Name      string
	CountryID string
	ZoneID    string
}

// EventRecord là một sự kiện bán hàng.
type EventRecord struct {
	ID        string
	Name      string
	StartDate int64
	EndDate   int64
}
