package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// RunRecord 一局游戏的结算记录
type RunRecord struct {
	ID             string    `msgpack:"id"`
	Seed           int64     `msgpack:"seed"`
	RoundsSurvived int       `msgpack:"roundsSurvived"`
	Duration       float64   `msgpack:"duration"` // 存活时间（秒）
	Defeated       int       `msgpack:"defeated"` // 击败敌人数
	Interference   int       `msgpack:"interference"`
	FinishedAt     time.Time `msgpack:"finishedAt"`
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "runs"

	// MaxStoredRecords 最多保留的记录条数，超出时丢弃最旧的
	MaxStoredRecords = 50
)

// RecordStore 对局记录存储
//
// 记录以 msgpack 编码后通过 gdata 持久化。
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中。
type RecordStore struct {
	store   propStore
	records []RunRecord
}

// NewRecordStore 创建记录存储并加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *RecordStore: 记录存储实例，加载失败时为空记录
func NewRecordStore(gdataManager *gdata.Manager) *RecordStore {
	rs := &RecordStore{
		store: propStore{manager: gdataManager, object: recordsObject, property: recordsProperty},
	}

	if err := rs.Load(); err != nil {
		// 损坏的记录不影响游戏，从空记录开始
		log.Printf("[RecordStore] Warning: Failed to load records: %v (starting empty)", err)
	}

	return rs
}

// Load 从 gdata 加载记录
//
// 返回：
//   - error: 读取或解码失败时返回错误
func (rs *RecordStore) Load() error {
	rs.records = nil

	data, ok, err := rs.store.read()
	if err != nil || !ok {
		return err
	}

	var records []RunRecord
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode records: %w", err)
	}

	rs.records = records
	log.Printf("[RecordStore] Loaded %d records", len(records))
	return nil
}

// Save 把记录写入 gdata
// 降级模式下直接返回 nil
func (rs *RecordStore) Save() error {
	if !rs.store.persistent() {
		return nil
	}

	data, err := msgpack.Marshal(rs.records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return rs.store.write(data)
}

// Append 追加一条记录并持久化
//
// ID 为空时生成一个 UUID；FinishedAt 为零值时使用当前时间。
//
// 返回：
//   - RunRecord: 实际保存的记录
//   - error: 持久化失败时返回错误（记录仍保留在内存中）
func (rs *RecordStore) Append(record RunRecord) (RunRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.FinishedAt.IsZero() {
		record.FinishedAt = time.Now()
	}

	rs.records = append(rs.records, record)
	if len(rs.records) > MaxStoredRecords {
		rs.records = rs.records[len(rs.records)-MaxStoredRecords:]
	}

	if err := rs.Save(); err != nil {
		return record, err
	}
	return record, nil
}

// Records 返回记录副本，按时间先后排列
func (rs *RecordStore) Records() []RunRecord {
	out := make([]RunRecord, len(rs.records))
	copy(out, rs.records)
	return out
}

// Best 返回最佳记录：存活回合最多，其次存活时间最长
func (rs *RecordStore) Best() (RunRecord, bool) {
	if len(rs.records) == 0 {
		return RunRecord{}, false
	}

	sorted := rs.Records()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RoundsSurvived != sorted[j].RoundsSurvived {
			return sorted[i].RoundsSurvived > sorted[j].RoundsSurvived
		}
		return sorted[i].Duration > sorted[j].Duration
	})
	return sorted[0], true
}

// Latest 返回最近追加的记录
func (rs *RecordStore) Latest() (RunRecord, bool) {
	if len(rs.records) == 0 {
		return RunRecord{}, false
	}
	return rs.records[len(rs.records)-1], true
}
