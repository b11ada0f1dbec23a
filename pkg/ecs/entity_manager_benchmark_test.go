package ecs

import "testing"

type benchmarkWave struct {
	Radius float64
}

type benchmarkPosition struct {
	X, Y float64
}

// setupBenchmarkEntities 创建指定数量的实体，每两个实体中有一个带 benchmarkWave
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPosition{X: float64(i), Y: float64(i * 2)})
		if i%2 == 0 {
			em.AddComponent(id, &benchmarkWave{Radius: float64(i)})
		}
	}
	return em
}

// BenchmarkGetEntitiesWith2 测试 1000 实体的双组件查询（含排序）
func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := setupBenchmarkEntities(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchmarkPosition, *benchmarkWave](em)
	}
}

// BenchmarkGetComponent 测试泛型组件获取
func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(1)
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := GetComponent[*benchmarkPosition](em, entity); !ok {
			b.Fatal("component not found")
		}
	}
}
