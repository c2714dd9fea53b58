/*
Package rdf provides the in-memory triple store the stop registry is
materialized into.

A Graph is an append-only log of facts (subject, predicate, object) with two
derived indexes: subject -> facts in insertion order, and
(predicate, object) -> subjects in first-assertion order. The log has multiset
semantics: duplicate facts are legal and both retained. Indexes are views over
the log, never a second source of truth.

Objects are either resource references (IRIs) or literals. Literals come in
three shapes: plain string, language-tagged string, and datatyped value.
Coordinate literals are built with NewDecimalLiteral, which keeps the lexical
form from the input so serialization loses no precision.

Each Graph carries a prefix map (short prefix -> namespace IRI) consumed by
the serializers in the formatter package. Derived graphs copy it.

Graphs are built single-threaded and read afterwards; there is no locking and
no concurrent-mutation API.
*/
package rdf
