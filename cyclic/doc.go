// Package cyclic analyzes cyclic structure of finite groups: generator
// discovery, cyclic-subgroup generation and Euler's totient function.
//
// A group G is cyclic when some g ∈ G generates it: ⟨g⟩ = G, which for a
// finite group means ord(g) = |G|. A cyclic group of order n has exactly
// φ(n) generators, where φ is Euler's totient — the count of integers in
// [1, n] coprime to n.
//
// Every check is exhaustive over the carrier; no classification shortcut
// replaces the definitional order computations.
package cyclic
