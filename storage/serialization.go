package storage

import (
	"fmt"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// MarshalETF serializes a record to its binary storage form.
func MarshalETF(etf *core.ETF) []byte {
	buf := make([]byte, core.ETFMUS.Size(*etf))
	core.ETFMUS.Marshal(*etf, buf)
	return buf
}

// UnmarshalETF deserializes a record from its binary storage form.
func UnmarshalETF(data []byte) (*core.ETF, error) {
	etf, _, err := core.ETFMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal ETF: %w", err)
	}
	return &etf, nil
}

// MarshalID serializes an ID to its binary storage form.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from its binary storage form.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("unmarshal ID: %w", err)
	}
	return id, nil
}
