package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// propStore 一个 gdata 对象属性的读写封装
//
// manager 为 nil 时处于降级模式：读取总是返回"不存在"，写入直接忽略。
type propStore struct {
	manager  *gdata.Manager
	object   string
	property string
}

// persistent 是否真正写入磁盘
func (p propStore) persistent() bool {
	return p.manager != nil
}

// read 读取属性内容
//
// 返回：
//   - []byte: 属性内容
//   - bool: 属性是否存在
//   - error: 读取失败时返回错误
func (p propStore) read() ([]byte, bool, error) {
	if p.manager == nil || !p.manager.ObjectPropExists(p.object, p.property) {
		return nil, false, nil
	}

	data, err := p.manager.LoadObjectProp(p.object, p.property)
	if err != nil {
		return nil, false, fmt.Errorf("read %s/%s: %w", p.object, p.property, err)
	}
	return data, true, nil
}

// write 覆盖写入属性内容
func (p propStore) write(data []byte) error {
	if p.manager == nil {
		return nil
	}
	if err := p.manager.SaveObjectProp(p.object, p.property, data); err != nil {
		return fmt.Errorf("write %s/%s: %w", p.object, p.property, err)
	}
	return nil
}
